// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity generates the opaque tokens the system runs on.

Client and session IDs are UUID v4 (google/uuid) with a pseudo-random
"<prefix>-<millis>-<hex>" fallback when the crypto source fails. Vote row IDs
are random hex from GenerateID. None of these are authenticated identities;
a client that clears its state simply becomes a new client.
*/
package identity

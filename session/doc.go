// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session manages client-local identity and per-session statistics.

The client id is minted once and stable indefinitely. The session id expires
30 minutes after minting (checked on read, not refreshed) and carries a guess
tally keyed by session id, so an expired session implicitly starts a fresh
tally. Reset rotates the session explicitly. Nothing here is authenticated
or visible to the server beyond the opaque client id in vote payloads.
*/
package session

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package kv is the client-side key-value persistence port (the stand-in for
// the browser's localStorage), with memory- and file-backed implementations.
package kv

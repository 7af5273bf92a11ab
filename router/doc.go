// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ routing.

# Routes

	POST /api/vote   → submit a vote
	GET  /api/stats  → aggregate statistics
	GET  /health     → liveness check
	GET  /{$}        → API banner

Anything else is a 404 from the mux. OPTIONS never reaches the mux: the CORS
wrapper in main answers preflight before routing.
*/
package router

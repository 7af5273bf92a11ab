// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Middleware

  - WithLogging: slog request/completion logging with duration
  - CORS: open cross-origin policy (*, GET/POST/OPTIONS, Content-Type) on
    every response; OPTIONS preflight returns 204 with no body

CORS wraps the whole router in main, outside the mux, so 404s and error
responses carry the headers too.

# JSON Helpers

  - JSONResponse: write status + JSON body
  - ErrorResponse: write a models.ErrorResponse
  - ParseJSONBody: decode a request body into a struct
*/
package middleware

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles storage setup: driver selection and schema creation.

# Schema

One table, votes, holding one immutable row per accepted vote submission.
Timestamps are epoch milliseconds assigned by the server at insert time.
CreateSchema is idempotent (IF NOT EXISTS) and runs at every startup.

# Backends

Open returns a *sql.DB for either backend:

  - sqlite (default): modernc.org/sqlite, CGO-free, single-file or in-memory
  - postgres: lib/pq

Both backends serve the same SQL; the handlers never branch on driver.
*/
package db

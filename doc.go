// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Spot the Bot vote API server.

Spot the Bot is a human-or-AI guessing game: players read a text passage,
guess whether a human or a model wrote it, and the server records the vote
and serves aggregate statistics.

# Starting the Server

The server runs on sqlite by default and needs no configuration:

	go run main.go

For PostgreSQL, set the database type and URL via environment or flags:

	go run main.go -t postgres -d "postgres://..."

# Configuration

Settings (CLI flag / env variable, all optional for sqlite):

  - PORT (-p): Server port (default: 8787)
  - DATABASE_URL (-d): Connection string (default: file:spot-the-bot.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

A .env file in the working directory is loaded before env lookups.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (vote submission, statistics)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - db: Schema creation and driver selection
  - cliparse: Configuration parsing
  - identity: Random ID generation

The terminal client lives under cmd/spotbot with its own packages
(catalog, client, session, kv, quiz).

See package documentation for each component.
*/
package main

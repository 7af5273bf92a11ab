// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment variables.

# Precedence

CLI flags take precedence over environment variables. A .env file in the
working directory is loaded first, and never overrides real environment
variables.

	-p / PORT            Server port (default 8787)
	-d / DATABASE_URL    Connection string (default file:spot-the-bot.db)
	-t / DATABASE_TYPE   sqlite or postgres (default sqlite)

# Defaults

sqlite needs no configuration at all: with nothing set, the server opens
file:spot-the-bot.db in the working directory. postgres requires an explicit
connection string.

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		// missing/invalid configuration
	}
*/
package cliparse

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Spot the Bot API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - VoteHandler: vote submission with duplicate suppression
  - StatsHandler: aggregate statistics

Handlers are created via constructor functions that accept *sql.DB and Config:

	voteHandler := handlers.NewVoteHandler(db, cfg)

# Vote Flow

	POST /api/vote → SubmitVote

Required fields: item_id, guess ("human"|"bot"), section, truth_source,
client_id. Optional: time_ms. A repeat vote for the same (item_id, client_id)
within 24 hours is not persisted and returns status "duplicate" — still a
200, and still carrying the item's current bot_percent.

# Statistics

	GET /api/stats → GetStats

One response with three aggregation levels (overall, by truth_source, by
item), each row carrying total, bot_guesses and bot_percent. bot_percent is
bot/total*100 as a raw float, and 0 when total is 0 at every level.
*/
package handlers

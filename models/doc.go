// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - VoteRequest: item_id, guess, section, truth_source, client_id, time_ms?

# Response Types

Types for JSON responses:

  - VoteResponse: status ("ok" or "duplicate"), bot_percent
  - StatsResponse: total_votes, total_bot_guesses, total_human_guesses,
    by_source, by_item
  - SourceStats / ItemStats: per-scope total, bot_guesses, bot_percent
  - ErrorResponse: error, message

bot_percent is always the raw float bot/total*100; rounding for display is
the client's job.

# Domain Types

  - Vote: one accepted submission; client_id is never serialized

# Constants

Guess values:

	GuessHuman = "human"
	GuessBot   = "bot"

Known truth sources:

	SourceHuman   = "human"
	SourceChatGPT = "chatgpt"
	SourceClaude  = "claude"
	SourceGemini  = "gemini"

Vote outcomes:

	VoteStatusOK        = "ok"
	VoteStatusDuplicate = "duplicate"

CooldownMillis is the 24-hour duplicate-vote window in epoch milliseconds.
*/
package models

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package quiz is the game controller for the terminal client.
//
// A Game holds the current item and its guess lock, records the
// per-session tally through a session.Manager, and submits votes to the
// vote service best-effort: a dead backend never blocks play, it just
// drops the global percentage line from the reveal. RenderPolls and
// RenderSession are the two read-only views over the same state.
package quiz

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package catalog loads the quiz item catalog and selects items for play.
//
// A catalog is a JSON array of items fetched over HTTP or read from a
// local file. Each item carries the passage text, its section, and the
// truth record revealed after a guess. Normalize replaces the small set
// of inline LaTeX Greek tokens that appear in passage text with their
// Unicode glyphs so terminals render them directly.
//
// Picker hands out items in random order without immediate repeats,
// cycling through the whole catalog before any item comes around again.
package catalog

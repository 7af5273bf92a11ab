// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// One row per accepted vote; rows are immutable, never updated or deleted.
// There is deliberately no UNIQUE(item_id, client_id): the cooldown is a
// business rule checked at write time, and the read-then-write race between
// concurrent requests from the same client is accepted.
const schema = `
-- Votes
CREATE TABLE IF NOT EXISTS votes (
    id TEXT PRIMARY KEY,
    item_id TEXT NOT NULL,
    client_id TEXT NOT NULL,
    guess TEXT NOT NULL CHECK (guess IN ('human', 'bot')),
    section TEXT NOT NULL,
    truth_source TEXT NOT NULL,
    time_ms BIGINT,
    created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_votes_item_client ON votes(item_id, client_id, created_at);
CREATE INDEX IF NOT EXISTS idx_votes_truth_source ON votes(truth_source);
`

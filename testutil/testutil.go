// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/spot-the-bot/cliparse"
	"github.com/danielhkuo/spot-the-bot/db"
	"github.com/danielhkuo/spot-the-bot/identity"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full schema.
// Each call gets its own database; a pool of one connection keeps it alive
// for the lifetime of the handle.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8787,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
	}
}

// InsertTestVote inserts a vote row directly and returns its ID.
// createdAt is epoch millis; pass time.Now().UnixMilli() for a fresh vote or
// an older value to land outside the cooldown window.
func InsertTestVote(t *testing.T, conn *sql.DB, itemID, clientID, guess, section, truthSource string, createdAt int64) string {
	t.Helper()

	voteID, _ := identity.GenerateID(16)
	_, err := conn.Exec(`
		INSERT INTO votes (id, item_id, client_id, guess, section, truth_source, time_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, voteID, itemID, clientID, guess, section, truthSource, nil, createdAt)
	if err != nil {
		t.Fatalf("Failed to insert test vote: %v", err)
	}

	return voteID
}

// NowMillis returns the current server clock in the storage format.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// CountVotes returns the number of vote rows for an item, or all rows when
// itemID is empty.
func CountVotes(t *testing.T, conn *sql.DB, itemID string) int {
	t.Helper()

	var count int
	var err error
	if itemID == "" {
		err = conn.QueryRow(`SELECT COUNT(*) FROM votes`).Scan(&count)
	} else {
		err = conn.QueryRow(`SELECT COUNT(*) FROM votes WHERE item_id = $1`, itemID).Scan(&count)
	}
	if err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	return count
}

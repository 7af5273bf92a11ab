// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/spot-the-bot/models"
)

// DefaultTimeout bounds a single API call. Vote submission is
// best-effort and the caller should not hang on a slow backend.
const DefaultTimeout = 10 * time.Second

// Client talks to the vote service HTTP API.
type Client struct {
	base string
	http *http.Client
}

// New creates a Client for the API at base (e.g. "http://localhost:8787").
// If httpClient is nil a client with DefaultTimeout is used.
func New(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: httpClient,
	}
}

// SubmitVote posts a vote and returns the service's response, which
// carries the fresh bot percentage for the item and whether the vote
// was counted or rejected as a duplicate.
func (c *Client) SubmitVote(ctx context.Context, vote models.VoteRequest) (models.VoteResponse, error) {
	var out models.VoteResponse

	body, err := json.Marshal(vote)
	if err != nil {
		return out, fmt.Errorf("encoding vote: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/vote", bytes.NewReader(body))
	if err != nil {
		return out, fmt.Errorf("building vote request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return out, fmt.Errorf("submitting vote: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return out, fmt.Errorf("vote service returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decoding vote response: %w", err)
	}
	return out, nil
}

// FetchStats retrieves the aggregated voting statistics.
func (c *Client) FetchStats(ctx context.Context) (models.StatsResponse, error) {
	var out models.StatsResponse

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/api/stats", nil)
	if err != nil {
		return out, fmt.Errorf("building stats request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return out, fmt.Errorf("fetching stats: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return out, fmt.Errorf("vote service returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decoding stats response: %w", err)
	}
	return out, nil
}

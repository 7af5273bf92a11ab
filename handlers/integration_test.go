// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/spot-the-bot/models"
	"github.com/danielhkuo/spot-the-bot/testutil"
)

// TestFullVotingFlow exercises the play-view sequence end to end at the
// handler level: vote, duplicate, stats.
func TestFullVotingFlow(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	voteHandler := NewVoteHandler(conn, cfg)
	statsHandler := NewStatsHandler(conn, cfg)

	vote := models.VoteRequest{
		ItemID:      "p1",
		Guess:       "bot",
		Section:     "s",
		TruthSource: "chatgpt",
		ClientID:    "c1",
	}

	// Step 1: first vote accepted with bot_percent 100
	w := httptest.NewRecorder()
	voteHandler.SubmitVote(w, testutil.MakeRequest("POST", "/api/vote", vote, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var voteResp models.VoteResponse
	testutil.AssertJSON(t, w, &voteResp)
	if voteResp.Status != models.VoteStatusOK || voteResp.BotPercent != 100 {
		t.Fatalf("Expected ok/100, got %+v", voteResp)
	}

	// Step 2: immediate repeat suppressed, no new row
	w = httptest.NewRecorder()
	voteHandler.SubmitVote(w, testutil.MakeRequest("POST", "/api/vote", vote, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	testutil.AssertJSON(t, w, &voteResp)
	if voteResp.Status != models.VoteStatusDuplicate {
		t.Fatalf("Expected duplicate, got %+v", voteResp)
	}
	if rows := testutil.CountVotes(t, conn, ""); rows != 1 {
		t.Fatalf("Expected 1 row after duplicate, got %d", rows)
	}

	// Step 3: a second client disagrees
	vote.ClientID = "c2"
	vote.Guess = "human"
	w = httptest.NewRecorder()
	voteHandler.SubmitVote(w, testutil.MakeRequest("POST", "/api/vote", vote, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	testutil.AssertJSON(t, w, &voteResp)
	if voteResp.BotPercent != 50 {
		t.Fatalf("Expected bot_percent 50 after split vote, got %v", voteResp.BotPercent)
	}

	// Step 4: stats reflect both votes at every level
	w = httptest.NewRecorder()
	statsHandler.GetStats(w, testutil.MakeRequest("GET", "/api/stats", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var stats models.StatsResponse
	testutil.AssertJSON(t, w, &stats)

	if stats.TotalVotes != 2 || stats.TotalBotGuesses != 1 || stats.TotalHumanGuesses != 1 {
		t.Errorf("Expected totals 2/1/1, got %d/%d/%d",
			stats.TotalVotes, stats.TotalBotGuesses, stats.TotalHumanGuesses)
	}
	if p1 := stats.ByItem["p1"]; p1.Total != 2 || p1.BotGuesses != 1 || p1.BotPercent != 50 {
		t.Errorf("Expected p1 {2,1,50}, got %+v", p1)
	}
	if src := stats.BySource["chatgpt"]; src.Total != 2 || src.BotGuesses != 1 {
		t.Errorf("Expected chatgpt {2,1}, got %+v", src)
	}
}

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/spot-the-bot/models"
)

func TestSubmitVote(t *testing.T) {
	var got models.VoteRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/vote", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(models.VoteResponse{Status: models.VoteStatusOK, BotPercent: 62.5})
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	ms := int64(4200)
	resp, err := c.SubmitVote(context.Background(), models.VoteRequest{
		ItemID:      "p1",
		Guess:       models.GuessBot,
		Section:     "abstract",
		TruthSource: models.SourceClaude,
		ClientID:    "client-1",
		TimeMs:      &ms,
	})
	require.NoError(t, err)
	require.Equal(t, models.VoteStatusOK, resp.Status)
	require.Equal(t, 62.5, resp.BotPercent)

	require.Equal(t, "p1", got.ItemID)
	require.Equal(t, models.GuessBot, got.Guess)
	require.NotNil(t, got.TimeMs)
	require.Equal(t, int64(4200), *got.TimeMs)
}

func TestSubmitVote_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	_, err := c.SubmitVote(context.Background(), models.VoteRequest{
		ItemID: "p1", Guess: models.GuessHuman, Section: "s", TruthSource: models.SourceHuman, ClientID: "c",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 500")
}

func TestSubmitVote_Unreachable(t *testing.T) {
	c := New("http://127.0.0.1:1", nil)
	_, err := c.SubmitVote(context.Background(), models.VoteRequest{
		ItemID: "p1", Guess: models.GuessHuman, Section: "s", TruthSource: models.SourceHuman, ClientID: "c",
	})
	require.Error(t, err)
}

func TestFetchStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/stats", r.URL.Path)

		json.NewEncoder(w).Encode(models.StatsResponse{
			TotalVotes:        3,
			TotalBotGuesses:   2,
			TotalHumanGuesses: 1,
			BySource: map[string]models.SourceStats{
				models.SourceHuman: {Total: 3, BotGuesses: 2, BotPercent: float64(2) / float64(3) * 100},
			},
			ByItem: map[string]models.ItemStats{
				"p1": {Section: "abstract", TruthSource: models.SourceHuman, Total: 3, BotGuesses: 2, BotPercent: float64(2) / float64(3) * 100},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	stats, err := c.FetchStats(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, stats.TotalVotes)
	require.Equal(t, 2, stats.BySource[models.SourceHuman].BotGuesses)
	require.Equal(t, "abstract", stats.ByItem["p1"].Section)
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/stats", r.URL.Path)
		json.NewEncoder(w).Encode(models.StatsResponse{})
	}))
	defer srv.Close()

	c := New(srv.URL+"/", srv.Client())
	_, err := c.FetchStats(context.Background())
	require.NoError(t, err)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/spot-the-bot/cliparse"
	"github.com/danielhkuo/spot-the-bot/handlers"
	"github.com/danielhkuo/spot-the-bot/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	voteHandler := handlers.NewVoteHandler(db, cfg)
	statsHandler := handlers.NewStatsHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Voting API (public)
	mux.HandleFunc("POST /api/vote", middleware.WithLogging(voteHandler.SubmitVote))
	mux.HandleFunc("GET /api/stats", middleware.WithLogging(statsHandler.GetStats))

	// Root endpoint; anything unmatched falls through to the mux 404
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("spot-the-bot API v1"))
	})

	return mux
}

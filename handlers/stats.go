// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/spot-the-bot/cliparse"
	"github.com/danielhkuo/spot-the-bot/middleware"
	"github.com/danielhkuo/spot-the-bot/models"
)

type StatsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewStatsHandler(db *sql.DB, cfg cliparse.Config) *StatsHandler {
	return &StatsHandler{db: db, cfg: cfg}
}

// GetStats handles GET /api/stats
//
// Three aggregates over the full votes table: overall totals, per
// truth_source, per item. Expected volume is small enough that a full scan
// per call is fine; revisit with a materialized view if that changes.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats := models.StatsResponse{
		BySource: map[string]models.SourceStats{},
		ByItem:   map[string]models.ItemStats{},
	}

	// Overall
	err := h.db.QueryRow(`
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN guess = 'bot' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN guess = 'human' THEN 1 ELSE 0 END), 0)
		FROM votes
	`).Scan(&stats.TotalVotes, &stats.TotalBotGuesses, &stats.TotalHumanGuesses)

	if err != nil {
		slog.Error("failed to query overall stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Grouped by truth source
	sourceRows, err := h.db.Query(`
		SELECT truth_source,
			COUNT(*),
			COALESCE(SUM(CASE WHEN guess = 'bot' THEN 1 ELSE 0 END), 0)
		FROM votes
		GROUP BY truth_source
	`)
	if err != nil {
		slog.Error("failed to query source stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer sourceRows.Close()

	for sourceRows.Next() {
		var source string
		var total, bot int
		if err := sourceRows.Scan(&source, &total, &bot); err != nil {
			slog.Error("failed to scan source stats", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		stats.BySource[source] = models.SourceStats{
			Total:      total,
			BotGuesses: bot,
			BotPercent: botPercent(bot, total),
		}
	}
	if err := sourceRows.Err(); err != nil {
		slog.Error("failed to iterate source stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Grouped by item
	itemRows, err := h.db.Query(`
		SELECT item_id, section, truth_source,
			COUNT(*),
			COALESCE(SUM(CASE WHEN guess = 'bot' THEN 1 ELSE 0 END), 0)
		FROM votes
		GROUP BY item_id, section, truth_source
		ORDER BY item_id ASC
	`)
	if err != nil {
		slog.Error("failed to query item stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var itemID, section, source string
		var total, bot int
		if err := itemRows.Scan(&itemID, &section, &source, &total, &bot); err != nil {
			slog.Error("failed to scan item stats", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		stats.ByItem[itemID] = models.ItemStats{
			Section:     section,
			TruthSource: source,
			Total:       total,
			BotGuesses:  bot,
			BotPercent:  botPercent(bot, total),
		}
	}
	if err := itemRows.Err(); err != nil {
		slog.Error("failed to iterate item stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, stats)
}

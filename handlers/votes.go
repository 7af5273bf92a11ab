// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/spot-the-bot/cliparse"
	"github.com/danielhkuo/spot-the-bot/identity"
	"github.com/danielhkuo/spot-the-bot/middleware"
	"github.com/danielhkuo/spot-the-bot/models"
)

type VoteHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVoteHandler(db *sql.DB, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{db: db, cfg: cfg}
}

// SubmitVote handles POST /api/vote
//
// A vote inside the 24h cooldown window for the same (item_id, client_id) is
// not persisted; the response is still 200 with status "duplicate" and a
// fresh bot_percent so the caller can render a reveal. Concurrent submissions
// can race past the lookup and insert two rows; accepted, see db schema.
func (h *VoteHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	// Parse request
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ItemID == "" || req.Guess == "" || req.Section == "" ||
		req.TruthSource == "" || req.ClientID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	if !models.ValidGuess(req.Guess) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid guess value")
		return
	}

	now := time.Now().UnixMilli()

	// Most recent prior vote for this (item, client) pair
	var lastCreatedAt int64
	err := h.db.QueryRow(`
		SELECT created_at FROM votes
		WHERE item_id = $1 AND client_id = $2
		ORDER BY created_at DESC
		LIMIT 1
	`, req.ItemID, req.ClientID).Scan(&lastCreatedAt)

	if err != nil && err != sql.ErrNoRows {
		slog.Error("failed to query prior vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err == nil && now-lastCreatedAt < models.CooldownMillis {
		percent, perr := h.botPercentForItem(req.ItemID)
		if perr != nil {
			slog.Error("failed to compute item stats", "error", perr, "item_id", req.ItemID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}

		slog.Info("vote ignored (cooldown)", "item_id", req.ItemID)
		middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
			Status:     models.VoteStatusDuplicate,
			BotPercent: percent,
		})
		return
	}

	voteID, err := identity.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate vote ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	var timeMs sql.NullInt64
	if req.TimeMs != nil {
		timeMs = sql.NullInt64{Int64: *req.TimeMs, Valid: true}
	}

	_, err = h.db.Exec(`
		INSERT INTO votes (id, item_id, client_id, guess, section, truth_source, time_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, voteID, req.ItemID, req.ClientID, req.Guess, req.Section, req.TruthSource, timeMs, now)

	if err != nil {
		slog.Error("failed to insert vote", "error", err, "item_id", req.ItemID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	percent, err := h.botPercentForItem(req.ItemID)
	if err != nil {
		slog.Error("failed to compute item stats", "error", err, "item_id", req.ItemID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("vote recorded", "item_id", req.ItemID, "guess", req.Guess, "section", req.Section)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Status:     models.VoteStatusOK,
		BotPercent: percent,
	})
}

// botPercentForItem returns the share of "bot" guesses for one item as a raw
// float in [0,100], 0 when the item has no votes.
func (h *VoteHandler) botPercentForItem(itemID string) (float64, error) {
	var total, botCount int
	err := h.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN guess = 'bot' THEN 1 ELSE 0 END), 0)
		FROM votes
		WHERE item_id = $1
	`, itemID).Scan(&total, &botCount)
	if err != nil {
		return 0, err
	}

	return botPercent(botCount, total), nil
}

// botPercent never divides by zero
func botPercent(botCount, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(botCount) / float64(total) * 100
}

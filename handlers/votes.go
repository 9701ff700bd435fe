// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/MarcoProfi00/budget-sociale/apperr"
	"github.com/MarcoProfi00/budget-sociale/cliparse"
	"github.com/MarcoProfi00/budget-sociale/middleware"
	"github.com/MarcoProfi00/budget-sociale/models"
	"github.com/MarcoProfi00/budget-sociale/store"
)

type VoteHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVoteHandler(db *sql.DB, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{db: db, cfg: cfg}
}

// Cast handles POST /api/votes
func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(h.db, h.cfg, r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ProposalID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "proposal_id is required")
		return
	}
	if req.Score < 1 || req.Score > 3 {
		middleware.AppError(w, apperr.ErrInvalidScore)
		return
	}

	if err := store.NewVoteStore(h.db).Cast(user.ID, req.ProposalID, req.Score); err != nil {
		middleware.AppError(w, err)
		return
	}

	slog.Info("vote cast", "proposal_id", req.ProposalID, "voter", user.ID, "score", req.Score)

	middleware.JSONResponse(w, http.StatusCreated, models.Vote{
		VoterID:    user.ID,
		ProposalID: req.ProposalID,
		Score:      req.Score,
	})
}

// Revoke handles DELETE /api/votes/{proposalId}
func (h *VoteHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(h.db, h.cfg, r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	proposalID := r.PathValue("proposalId")
	if proposalID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "proposal id is required")
		return
	}

	if err := store.NewVoteStore(h.db).Revoke(user.ID, proposalID); err != nil {
		middleware.AppError(w, err)
		return
	}

	slog.Info("vote revoked", "proposal_id", proposalID, "voter", user.ID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Vote revoked"})
}

// Mine handles GET /api/votes/my
func (h *VoteHandler) Mine(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(h.db, h.cfg, r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	prefs, err := store.NewVoteStore(h.db).ByVoter(user.ID)
	if err != nil {
		middleware.AppError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, prefs)
}

// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/MarcoProfi00/budget-sociale/cliparse"
	"github.com/MarcoProfi00/budget-sociale/middleware"
	"github.com/MarcoProfi00/budget-sociale/models"
	"github.com/MarcoProfi00/budget-sociale/store"
)

type ApprovalHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewApprovalHandler(db *sql.DB, cfg cliparse.Config) *ApprovalHandler {
	return &ApprovalHandler{db: db, cfg: cfg}
}

// Run handles POST /api/approval
func (h *ApprovalHandler) Run(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(h.db, h.cfg, r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	result, err := store.NewApprovalEngine(h.db).Run(user.Role)
	if err != nil {
		middleware.AppError(w, err)
		return
	}

	slog.Info("approval computed",
		"approved", len(result.ApprovedIDs),
		"total_cost", humanize.Commaf(result.TotalCost),
		"budget", humanize.Commaf(result.Budget),
	)

	middleware.JSONResponse(w, http.StatusOK, models.ApprovalSummaryResponse{
		ApprovedCount: len(result.ApprovedIDs),
		TotalCost:     result.TotalCost,
		Budget:        result.Budget,
		Display: fmt.Sprintf("%s of %s allocated",
			humanize.Commaf(result.TotalCost), humanize.Commaf(result.Budget)),
	})
}

// Approved handles GET /api/approval/approved (public read)
func (h *ApprovalHandler) Approved(w http.ResponseWriter, r *http.Request) {
	ranked, err := store.NewApprovalEngine(h.db).Approved()
	if err != nil {
		middleware.AppError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, ranked)
}

// NotApproved handles GET /api/approval/not-approved
func (h *ApprovalHandler) NotApproved(w http.ResponseWriter, r *http.Request) {
	if _, err := sessionUser(h.db, h.cfg, r); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	ranked, err := store.NewApprovalEngine(h.db).NotApproved()
	if err != nil {
		middleware.AppError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, ranked)
}

// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/MarcoProfi00/budget-sociale/cliparse"
	"github.com/MarcoProfi00/budget-sociale/middleware"
	"github.com/MarcoProfi00/budget-sociale/models"
	"github.com/MarcoProfi00/budget-sociale/store"
)

type BudgetHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewBudgetHandler(db *sql.DB, cfg cliparse.Config) *BudgetHandler {
	return &BudgetHandler{db: db, cfg: cfg}
}

// Init handles POST /api/budget
func (h *BudgetHandler) Init(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(h.db, h.cfg, r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req models.InitBudgetRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := store.NewBudgetStore(h.db).InitBudget(user.Role, req.Amount); err != nil {
		middleware.AppError(w, err)
		return
	}

	slog.Info("budget initialized", "amount", humanize.Commaf(req.Amount), "admin", user.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.BudgetCycle{
		Amount: req.Amount,
		Phase:  models.PhaseBudgetSetup,
	})
}

// Get handles GET /api/budget (public read, never fails on missing cycle)
func (h *BudgetHandler) Get(w http.ResponseWriter, r *http.Request) {
	cycle, err := store.NewBudgetStore(h.db).GetCycle()
	if err != nil {
		middleware.AppError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, cycle)
}

// AdvancePhase handles POST /api/budget/phase
func (h *BudgetHandler) AdvancePhase(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(h.db, h.cfg, r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	next, err := store.NewBudgetStore(h.db).AdvancePhase(user.Role)
	if err != nil {
		middleware.AppError(w, err)
		return
	}

	slog.Info("phase advanced", "phase", next, "admin", user.ID)

	middleware.JSONResponse(w, http.StatusOK, map[string]int{"phase": next})
}

// Reset handles DELETE /api/budget
func (h *BudgetHandler) Reset(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(h.db, h.cfg, r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	if err := store.NewBudgetStore(h.db).Reset(user.Role); err != nil {
		middleware.AppError(w, err)
		return
	}

	slog.Info("process restarted", "admin", user.ID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Process restarted"})
}

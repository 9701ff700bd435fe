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

type ProposalHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewProposalHandler(db *sql.DB, cfg cliparse.Config) *ProposalHandler {
	return &ProposalHandler{db: db, cfg: cfg}
}

// Create handles POST /api/proposals
func (h *ProposalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(h.db, h.cfg, r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req models.CreateProposalRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, err := store.NewProposalStore(h.db).Create(user.ID, req.Description, req.Cost)
	if err != nil {
		middleware.AppError(w, err)
		return
	}

	slog.Info("proposal created", "proposal_id", id, "author", user.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateProposalResponse{ProposalID: id})
}

// Update handles PUT /api/proposals/{id}
func (h *ProposalHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(h.db, h.cfg, r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	proposalID := r.PathValue("id")
	if proposalID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "proposal id is required")
		return
	}

	var req models.UpdateProposalRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Same input rules as creation, checked at the route layer.
	if err := store.ValidateDescription(req.Description); err != nil {
		middleware.AppError(w, err)
		return
	}
	if req.Cost <= 0 {
		middleware.AppError(w, apperr.ErrInvalidCost)
		return
	}

	err = store.NewProposalStore(h.db).Update(user.ID, proposalID, req.Description, req.Cost)
	if err != nil {
		middleware.AppError(w, err)
		return
	}

	slog.Info("proposal updated", "proposal_id", proposalID, "author", user.ID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Proposal updated"})
}

// Delete handles DELETE /api/proposals/{id}
func (h *ProposalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(h.db, h.cfg, r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	proposalID := r.PathValue("id")
	if proposalID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "proposal id is required")
		return
	}

	n, err := store.NewProposalStore(h.db).Delete(user.ID, proposalID)
	if err != nil {
		middleware.AppError(w, err)
		return
	}

	slog.Info("proposal deleted", "proposal_id", proposalID, "author", user.ID, "rows", n)

	middleware.JSONResponse(w, http.StatusOK, map[string]int64{"deleted": n})
}

// Mine handles GET /api/proposals/my
func (h *ProposalHandler) Mine(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(h.db, h.cfg, r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	proposals, err := store.NewProposalStore(h.db).ByAuthor(user.ID)
	if err != nil {
		middleware.AppError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, proposals)
}

// All handles GET /api/proposals
func (h *ProposalHandler) All(w http.ResponseWriter, r *http.Request) {
	if _, err := sessionUser(h.db, h.cfg, r); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	proposals, err := store.NewProposalStore(h.db).All()
	if err != nil {
		middleware.AppError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, proposals)
}

// ByID handles GET /api/proposals/{id}
func (h *ProposalHandler) ByID(w http.ResponseWriter, r *http.Request) {
	if _, err := sessionUser(h.db, h.cfg, r); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	proposalID := r.PathValue("id")
	if proposalID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "proposal id is required")
		return
	}

	proposal, err := store.NewProposalStore(h.db).ByID(proposalID)
	if err != nil {
		middleware.AppError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, proposal)
}

// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/MarcoProfi00/budget-sociale/cliparse"
	"github.com/MarcoProfi00/budget-sociale/handlers"
	"github.com/MarcoProfi00/budget-sociale/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(db, cfg)
	budgetHandler := handlers.NewBudgetHandler(db, cfg)
	proposalHandler := handlers.NewProposalHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg)
	approvalHandler := handlers.NewApprovalHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Sessions
	mux.HandleFunc("POST /api/sessions", middleware.WithLogging(sessionHandler.Login))
	mux.HandleFunc("GET /api/sessions/current", middleware.WithLogging(sessionHandler.Current))
	mux.HandleFunc("DELETE /api/sessions/current", middleware.WithLogging(sessionHandler.Logout))

	// Budget lifecycle (admin operations except the public read)
	mux.HandleFunc("POST /api/budget", middleware.WithLogging(budgetHandler.Init))
	mux.HandleFunc("GET /api/budget", middleware.WithLogging(budgetHandler.Get))
	mux.HandleFunc("POST /api/budget/phase", middleware.WithLogging(budgetHandler.AdvancePhase))
	mux.HandleFunc("DELETE /api/budget", middleware.WithLogging(budgetHandler.Reset))

	// Proposals (phase 1)
	mux.HandleFunc("POST /api/proposals", middleware.WithLogging(proposalHandler.Create))
	mux.HandleFunc("GET /api/proposals", middleware.WithLogging(proposalHandler.All))
	mux.HandleFunc("GET /api/proposals/my", middleware.WithLogging(proposalHandler.Mine))
	mux.HandleFunc("GET /api/proposals/{id}", middleware.WithLogging(proposalHandler.ByID))
	mux.HandleFunc("PUT /api/proposals/{id}", middleware.WithLogging(proposalHandler.Update))
	mux.HandleFunc("DELETE /api/proposals/{id}", middleware.WithLogging(proposalHandler.Delete))

	// Votes (phase 2)
	mux.HandleFunc("POST /api/votes", middleware.WithLogging(voteHandler.Cast))
	mux.HandleFunc("GET /api/votes/my", middleware.WithLogging(voteHandler.Mine))
	mux.HandleFunc("DELETE /api/votes/{proposalId}", middleware.WithLogging(voteHandler.Revoke))

	// Approval (phase 3)
	mux.HandleFunc("POST /api/approval", middleware.WithLogging(approvalHandler.Run))
	mux.HandleFunc("GET /api/approval/approved", middleware.WithLogging(approvalHandler.Approved))
	mux.HandleFunc("GET /api/approval/not-approved", middleware.WithLogging(approvalHandler.NotApproved))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("budget-sociale API v1"))
	})

	return mux
}

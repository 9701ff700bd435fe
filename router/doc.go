// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Budget Sociale API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Sessions:

	POST   /api/sessions         - Log in
	GET    /api/sessions/current - Current user
	DELETE /api/sessions/current - Log out

Budget lifecycle (admin, except the public read):

	POST   /api/budget       - Define the budget
	GET    /api/budget       - Read amount and phase (public)
	POST   /api/budget/phase - Advance to the next phase
	DELETE /api/budget       - Restart the process

Proposals (members, phase 1):

	POST   /api/proposals      - Submit a proposal
	GET    /api/proposals      - List all proposals
	GET    /api/proposals/my   - List own proposals
	GET    /api/proposals/{id} - Read one proposal
	PUT    /api/proposals/{id} - Edit own proposal
	DELETE /api/proposals/{id} - Withdraw own proposal

Votes (members, phase 2):

	POST   /api/votes              - Cast a score
	GET    /api/votes/my           - List own votes
	DELETE /api/votes/{proposalId} - Revoke a score

Approval (phase 3):

	POST /api/approval              - Run the allocation (admin)
	GET  /api/approval/approved     - Funded proposals (public)
	GET  /api/approval/not-approved - Unfunded proposals

# Handler Initialization

The router creates handler instances with dependency injection:

	sessionHandler := handlers.NewSessionHandler(db, cfg)
	budgetHandler := handlers.NewBudgetHandler(db, cfg)
	proposalHandler := handlers.NewProposalHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg)
	approvalHandler := handlers.NewApprovalHandler(db, cfg)

All handlers receive the database connection and configuration.
*/
package router

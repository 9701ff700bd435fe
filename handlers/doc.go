// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Budget Sociale API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - SessionHandler: Login, current session, logout
  - BudgetHandler: Budget definition, phase advance, process restart
  - ProposalHandler: Proposal CRUD during the proposal phase
  - VoteHandler: Vote casting and revocation during the voting phase
  - ApprovalHandler: Allocation run and result listings

Handlers are created via constructor functions that accept *sql.DB and Config:

	budgetHandler := handlers.NewBudgetHandler(db, cfg)

# Authentication

Most routes resolve the caller from the session cookie. A missing or
invalid cookie yields 401 before any business rule runs. Two reads are
public: GET /api/budget and GET /api/approval/approved.

# Error Handling

Handlers do transport-level checks (JSON shape, required fields) and
delegate everything else to the store layer. Business errors come back
as apperr sentinels and are mapped to HTTP responses by
middleware.AppError; anything else becomes a logged 500.

# The Happy Path

	POST /api/sessions            → log in, receive the session cookie
	POST /api/budget              → admin defines the budget (phase 0)
	POST /api/budget/phase        → admin opens proposals (phase 1)
	POST /api/proposals           → members submit proposals
	POST /api/budget/phase        → admin opens voting (phase 2)
	POST /api/votes               → members score proposals
	POST /api/budget/phase        → admin closes the process (phase 3)
	POST /api/approval            → admin runs the allocation
	GET  /api/approval/approved   → anyone reads the funded proposals
	DELETE /api/budget            → admin restarts from scratch
*/
package handlers

// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements the business rules of the budgeting process on
top of database/sql.

# Stores

Each store wraps the shared *sql.DB:

  - BudgetStore: budget definition, phase machine, process restart
  - ProposalStore: proposal CRUD with phase, ownership, and cap checks
  - VoteStore: vote casting, revocation, and score aggregation
  - ApprovalEngine: the greedy allocation pass and result listings
  - UserStore: credential and identity lookups

# Rule Enforcement

All rule checks live here, inside the same transaction as the write they
guard. A proposal insert, for example, re-reads the cycle phase, the
budget bound, the duplicate description, and the author's proposal count
before touching the table, so two concurrent requests cannot both slip
past a limit.

Violations surface as apperr sentinels; callers match with errors.Is and
map to HTTP via middleware.AppError.

# The Allocation Pass

ApprovalEngine.Run orders proposals by total score descending and walks
the list once, funding each proposal that still fits the remaining
budget. The walk stops when the running total reaches the budget, and a
proposal that does not fit does not stop cheaper proposals further down
from being funded. Reruns reset all approval flags first, so the stored
flags always reflect exactly the latest pass.

# Placeholders

SQL uses $1-style placeholders and a dialect subset accepted by both
lib/pq and modernc.org/sqlite, so the same store code runs on either
backend. Unique-violation errors from both drivers are translated into
the matching apperr conflict sentinels.
*/
package store

// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package apperr defines the business-error taxonomy of the budgeting service.

Every rule violation is a sentinel *Error carrying a fixed message and the
HTTP status it maps to. Stores return these sentinels (possibly wrapped),
handlers pass them to middleware.AppError, and clients see stable messages.

# Usage

Stores wrap sentinels with context:

	return fmt.Errorf("casting vote: %w", apperr.ErrSelfVote)

Handlers and tests match them with errors.Is:

	if errors.Is(err, apperr.ErrSelfVote) { ... }

Status maps any error to an HTTP status. Errors outside the taxonomy
(driver faults, broken connections) map to 500 and are never shown to
clients verbatim.

# Categories

  - 403: role, ownership, phase, and budget-bound violations
  - 404: missing budget, proposals, votes, or users
  - 409: duplicate budget, proposal description, or vote
  - 422: malformed input values (amount, description, cost, score)
*/
package apperr

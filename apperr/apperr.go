// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apperr

import (
	"errors"
	"net/http"
)

// Error is a business-rule failure with a fixed message and the HTTP status
// it maps to. Business errors are deterministic and never retried.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Sentinel errors for every business-rule failure in the system.
var (
	ErrProposalsNotFound = &Error{Code: http.StatusNotFound, Message: "Proposals not found"}
	ErrProposalExists    = &Error{Code: http.StatusConflict, Message: "Proposal already exists"}
	ErrNotOwner          = &Error{Code: http.StatusForbidden, Message: "Another user's proposal"}
	ErrSelfVote          = &Error{Code: http.StatusForbidden, Message: "You cannot vote your proposal"}
	ErrDuplicateVote     = &Error{Code: http.StatusConflict, Message: "You cannot vote for the same proposal twice"}
	ErrVotesNotFound     = &Error{Code: http.StatusNotFound, Message: "User has not voted on any proposal"}
	ErrNotAdmin          = &Error{Code: http.StatusForbidden, Message: "Only the admin can perform this operation"}
	ErrBudgetNotSet      = &Error{Code: http.StatusNotFound, Message: "Budget not found"}
	ErrBudgetExists      = &Error{Code: http.StatusConflict, Message: "Budget already defined"}
	ErrCostOverBudget    = &Error{Code: http.StatusForbidden, Message: "Cost of the proposal greater than the defined budget"}
	ErrProposalLimit     = &Error{Code: http.StatusForbidden, Message: "User has already 3 proposals"}
	ErrWrongPhase        = &Error{Code: http.StatusForbidden, Message: "Operation not permitted, incorrect phase"}
	ErrPhaseLimit        = &Error{Code: http.StatusForbidden, Message: "The phase not allowed"}
	ErrUserNotFound      = &Error{Code: http.StatusNotFound, Message: "User Not Found"}
)

// Input-validation failures (422, matching the original route-level checks).
var (
	ErrInvalidAmount      = &Error{Code: http.StatusUnprocessableEntity, Message: "Budget amount must be a non-negative number"}
	ErrInvalidDescription = &Error{Code: http.StatusUnprocessableEntity, Message: "Description must be a non-empty, non-numeric text of at most 50 characters"}
	ErrInvalidCost        = &Error{Code: http.StatusUnprocessableEntity, Message: "Cost must be a positive number"}
	ErrInvalidScore       = &Error{Code: http.StatusUnprocessableEntity, Message: "Score must be 1, 2 or 3"}
)

// Status returns the HTTP status for err: the embedded code for business
// errors, 500 for anything else (storage faults propagate as server errors).
func Status(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// IsBusiness reports whether err belongs to the business-error taxonomy.
func IsBusiness(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr)
}

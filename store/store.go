// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/MarcoProfi00/budget-sociale/apperr"
	"github.com/MarcoProfi00/budget-sociale/models"
)

// querier is the subset of *sql.DB / *sql.Tx the phase helpers need.
type querier interface {
	QueryRow(query string, args ...any) *sql.Row
}

// readCycle returns the singleton budget cycle or apperr.ErrBudgetNotSet.
func readCycle(q querier) (models.BudgetCycle, error) {
	var c models.BudgetCycle
	err := q.QueryRow(`
		SELECT id, amount, phase FROM budget_cycle WHERE id = $1
	`, models.CycleID).Scan(&c.ID, &c.Amount, &c.Phase)
	if err == sql.ErrNoRows {
		return models.BudgetCycle{}, apperr.ErrBudgetNotSet
	}
	if err != nil {
		return models.BudgetCycle{}, fmt.Errorf("failed to read budget cycle: %w", err)
	}
	return c, nil
}

// requirePhase rejects the operation unless the process is in phase want.
func requirePhase(q querier, want int) error {
	c, err := readCycle(q)
	if err != nil {
		return err
	}
	if c.Phase != want {
		return apperr.ErrWrongPhase
	}
	return nil
}

// requireAdmin is the single authorization policy for admin-gated operations.
func requireAdmin(role string) error {
	if role != models.RoleAdmin {
		return apperr.ErrNotAdmin
	}
	return nil
}

// isUniqueViolation detects a uniqueness constraint failure from either
// driver: pq error code 23505, or the sqlite constraint message.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint")
}

// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"

	"github.com/MarcoProfi00/budget-sociale/apperr"
	"github.com/MarcoProfi00/budget-sociale/models"
)

// BudgetStore owns the singleton budget cycle and its phase state machine.
type BudgetStore struct {
	db *sql.DB
}

func NewBudgetStore(db *sql.DB) *BudgetStore {
	return &BudgetStore{db: db}
}

// InitBudget creates the budget cycle at phase 0. Admin only; fails if a
// cycle already exists.
func (s *BudgetStore) InitBudget(role string, amount float64) error {
	if err := requireAdmin(role); err != nil {
		return err
	}
	if amount < 0 {
		return apperr.ErrInvalidAmount
	}

	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM budget_cycle WHERE id = $1)
	`, models.CycleID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check budget cycle: %w", err)
	}
	if exists {
		return apperr.ErrBudgetExists
	}

	_, err = s.db.Exec(`
		INSERT INTO budget_cycle (id, amount, phase)
		VALUES ($1, $2, $3)
	`, models.CycleID, amount, models.PhaseBudgetSetup)
	if err != nil {
		// Fixed primary key backstops the existence check under races.
		if isUniqueViolation(err) {
			return apperr.ErrBudgetExists
		}
		return fmt.Errorf("failed to insert budget cycle: %w", err)
	}
	return nil
}

// GetCycle returns the singleton cycle, or the zero placeholder
// {amount: 0, phase: 0} when no cycle has been initialized yet.
func (s *BudgetStore) GetCycle() (models.BudgetCycle, error) {
	c, err := readCycle(s.db)
	if err == apperr.ErrBudgetNotSet {
		return models.BudgetCycle{Amount: 0, Phase: models.PhaseBudgetSetup}, nil
	}
	if err != nil {
		return models.BudgetCycle{}, err
	}
	return c, nil
}

// AdvancePhase increments the phase by exactly one, capped at phase 3.
// Admin only. Returns the new phase.
func (s *BudgetStore) AdvancePhase(role string) (int, error) {
	if err := requireAdmin(role); err != nil {
		return 0, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	c, err := readCycle(tx)
	if err != nil {
		return 0, err
	}
	if c.Phase >= models.PhaseClosed {
		return 0, apperr.ErrPhaseLimit
	}

	next := c.Phase + 1
	_, err = tx.Exec(`
		UPDATE budget_cycle SET phase = $1 WHERE id = $2
	`, next, models.CycleID)
	if err != nil {
		return 0, fmt.Errorf("failed to advance phase: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit phase advance: %w", err)
	}
	return next, nil
}

// Reset tears the whole process down: votes, then proposals, then the cycle,
// in that order to respect referential integrity. Admin only, phase 3 only.
func (s *BudgetStore) Reset(role string) error {
	if err := requireAdmin(role); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	c, err := readCycle(tx)
	if err != nil {
		return err
	}
	if c.Phase != models.PhaseClosed {
		return apperr.ErrWrongPhase
	}

	if _, err := tx.Exec(`DELETE FROM vote`); err != nil {
		return fmt.Errorf("failed to delete votes: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM proposal`); err != nil {
		return fmt.Errorf("failed to delete proposals: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM budget_cycle WHERE id = $1`, models.CycleID); err != nil {
		return fmt.Errorf("failed to delete budget cycle: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset: %w", err)
	}
	return nil
}

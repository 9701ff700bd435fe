// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/MarcoProfi00/budget-sociale/apperr"
	"github.com/MarcoProfi00/budget-sociale/auth"
	"github.com/MarcoProfi00/budget-sociale/models"
)

// ProposalStore handles proposal CRUD with the phase-1 business rules.
type ProposalStore struct {
	db *sql.DB
}

func NewProposalStore(db *sql.DB) *ProposalStore {
	return &ProposalStore{db: db}
}

// ValidateDescription enforces the proposal description rules: non-empty,
// at most 50 characters, and not parseable purely as a number.
func ValidateDescription(description string) error {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" || len(description) > models.MaxDescriptionLen {
		return apperr.ErrInvalidDescription
	}
	if _, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return apperr.ErrInvalidDescription
	}
	return nil
}

// Create inserts a new proposal in phase 1 with approved=false and returns
// the assigned id. The compound check+insert runs in one transaction; the
// UNIQUE constraint on description backstops the duplicate check.
func (s *ProposalStore) Create(authorID, description string, cost float64) (string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	c, err := readCycle(tx)
	if err != nil {
		return "", err
	}
	if c.Phase != models.PhaseProposals {
		return "", apperr.ErrWrongPhase
	}

	if err := ValidateDescription(description); err != nil {
		return "", err
	}
	if cost <= 0 {
		return "", apperr.ErrInvalidCost
	}
	if cost > c.Amount {
		return "", apperr.ErrCostOverBudget
	}

	var exists bool
	err = tx.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM proposal WHERE description = $1)
	`, description).Scan(&exists)
	if err != nil {
		return "", fmt.Errorf("failed to check description: %w", err)
	}
	if exists {
		return "", apperr.ErrProposalExists
	}

	var count int
	err = tx.QueryRow(`
		SELECT COUNT(*) FROM proposal WHERE author_id = $1
	`, authorID).Scan(&count)
	if err != nil {
		return "", fmt.Errorf("failed to count proposals: %w", err)
	}
	if count >= models.MaxProposalsPerAuthor {
		return "", apperr.ErrProposalLimit
	}

	id := auth.NewID()
	_, err = tx.Exec(`
		INSERT INTO proposal (id, author_id, description, cost, approved)
		VALUES ($1, $2, $3, $4, $5)
	`, id, authorID, description, cost, false)
	if err != nil {
		if isUniqueViolation(err) {
			return "", apperr.ErrProposalExists
		}
		return "", fmt.Errorf("failed to insert proposal: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit proposal: %w", err)
	}
	return id, nil
}

// Update overwrites description and cost of the author's own proposal and
// force-resets the approved flag. Phase 1 only.
func (s *ProposalStore) Update(authorID, proposalID, description string, cost float64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := requirePhase(tx, models.PhaseProposals); err != nil {
		return err
	}

	var owned bool
	err = tx.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM proposal WHERE id = $1 AND author_id = $2)
	`, proposalID, authorID).Scan(&owned)
	if err != nil {
		return fmt.Errorf("failed to check proposal ownership: %w", err)
	}
	if !owned {
		return apperr.ErrNotOwner
	}

	res, err := tx.Exec(`
		UPDATE proposal SET description = $1, cost = $2, approved = $3
		WHERE id = $4 AND author_id = $5
	`, description, cost, false, proposalID, authorID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.ErrProposalExists
		}
		return fmt.Errorf("failed to update proposal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n != 1 {
		return apperr.ErrProposalsNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit update: %w", err)
	}
	return nil
}

// Delete removes the author's own proposal and returns the affected-row
// count. Phase 1 only.
func (s *ProposalStore) Delete(authorID, proposalID string) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := requirePhase(tx, models.PhaseProposals); err != nil {
		return 0, err
	}

	var owned bool
	err = tx.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM proposal WHERE id = $1 AND author_id = $2)
	`, proposalID, authorID).Scan(&owned)
	if err != nil {
		return 0, fmt.Errorf("failed to check proposal ownership: %w", err)
	}
	if !owned {
		return 0, apperr.ErrNotOwner
	}

	res, err := tx.Exec(`
		DELETE FROM proposal WHERE id = $1 AND author_id = $2
	`, proposalID, authorID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete proposal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit delete: %w", err)
	}
	return n, nil
}

// ByAuthor lists a user's proposals. Zero rows is surfaced as a not-found
// error, matching the reference behavior.
func (s *ProposalStore) ByAuthor(authorID string) ([]models.Proposal, error) {
	return s.list(`
		SELECT id, author_id, description, cost, approved
		FROM proposal WHERE author_id = $1
	`, authorID)
}

// All lists every proposal. Zero rows is an error, as in ByAuthor.
func (s *ProposalStore) All() ([]models.Proposal, error) {
	return s.list(`
		SELECT id, author_id, description, cost, approved
		FROM proposal
	`)
}

// ByID returns a single proposal.
func (s *ProposalStore) ByID(proposalID string) (models.Proposal, error) {
	var p models.Proposal
	err := s.db.QueryRow(`
		SELECT id, author_id, description, cost, approved
		FROM proposal WHERE id = $1
	`, proposalID).Scan(&p.ID, &p.AuthorID, &p.Description, &p.Cost, &p.Approved)
	if err == sql.ErrNoRows {
		return models.Proposal{}, apperr.ErrProposalsNotFound
	}
	if err != nil {
		return models.Proposal{}, fmt.Errorf("failed to query proposal: %w", err)
	}
	return p, nil
}

func (s *ProposalStore) list(query string, args ...any) ([]models.Proposal, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query proposals: %w", err)
	}
	defer rows.Close()

	var proposals []models.Proposal
	for rows.Next() {
		var p models.Proposal
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Description, &p.Cost, &p.Approved); err != nil {
			return nil, fmt.Errorf("failed to scan proposal: %w", err)
		}
		proposals = append(proposals, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate proposals: %w", err)
	}
	if len(proposals) == 0 {
		return nil, apperr.ErrProposalsNotFound
	}
	return proposals, nil
}

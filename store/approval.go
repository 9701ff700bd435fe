// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"

	"github.com/MarcoProfi00/budget-sociale/apperr"
	"github.com/MarcoProfi00/budget-sociale/models"
)

// ApprovalEngine selects the winning proposals once voting has closed.
type ApprovalEngine struct {
	db *sql.DB
}

func NewApprovalEngine(db *sql.DB) *ApprovalEngine {
	return &ApprovalEngine{db: db}
}

// ApprovalResult summarizes one approval run.
type ApprovalResult struct {
	ApprovedIDs []string
	TotalCost   float64
	Budget      float64
}

// Run walks proposals in descending total-score order and greedily selects
// them into the budget: a proposal is taken when its cost still fits, and
// the scan stops entirely once the running total reaches the budget. This
// is a single greedy pass, not an optimal knapsack. Flag updates are
// committed atomically together with the reads. Admin only, phase 3 only.
func (e *ApprovalEngine) Run(role string) (ApprovalResult, error) {
	if err := requireAdmin(role); err != nil {
		return ApprovalResult{}, err
	}

	tx, err := e.db.Begin()
	if err != nil {
		return ApprovalResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	c, err := readCycle(tx)
	if err != nil {
		return ApprovalResult{}, err
	}
	if c.Phase != models.PhaseClosed {
		return ApprovalResult{}, apperr.ErrWrongPhase
	}

	ranked, err := aggregateScores(tx)
	if err != nil {
		return ApprovalResult{}, err
	}

	result := ApprovalResult{Budget: c.Amount}
	for _, p := range ranked {
		if result.TotalCost >= c.Amount {
			break
		}
		if result.TotalCost+p.Cost <= c.Amount {
			result.ApprovedIDs = append(result.ApprovedIDs, p.ID)
			result.TotalCost += p.Cost
		}
	}

	// All-or-nothing flag update: clear everything, then mark the selection.
	if _, err := tx.Exec(`UPDATE proposal SET approved = $1`, false); err != nil {
		return ApprovalResult{}, fmt.Errorf("failed to clear approved flags: %w", err)
	}
	for _, id := range result.ApprovedIDs {
		if _, err := tx.Exec(`UPDATE proposal SET approved = $1 WHERE id = $2`, true, id); err != nil {
			return ApprovalResult{}, fmt.Errorf("failed to approve proposal %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return ApprovalResult{}, fmt.Errorf("failed to commit approval: %w", err)
	}
	return result, nil
}

// Approved lists approved proposals with author display name and total
// score, highest score first.
func (e *ApprovalEngine) Approved() ([]models.RankedProposal, error) {
	return e.listRanked(true)
}

// NotApproved is the symmetric listing for rejected proposals.
func (e *ApprovalEngine) NotApproved() ([]models.RankedProposal, error) {
	return e.listRanked(false)
}

func (e *ApprovalEngine) listRanked(approved bool) ([]models.RankedProposal, error) {
	rows, err := e.db.Query(`
		SELECT p.id, p.description, p.cost, u.name || ' ' || u.surname AS author,
		       COALESCE(SUM(v.score), 0) AS total_score
		FROM proposal p
		JOIN app_user u ON u.id = p.author_id
		LEFT JOIN vote v ON v.proposal_id = p.id
		WHERE p.approved = $1
		GROUP BY p.id, p.description, p.cost, u.name, u.surname
		ORDER BY total_score DESC
	`, approved)
	if err != nil {
		return nil, fmt.Errorf("failed to query ranked proposals: %w", err)
	}
	defer rows.Close()

	var ranked []models.RankedProposal
	for rows.Next() {
		var rp models.RankedProposal
		if err := rows.Scan(&rp.ID, &rp.Description, &rp.Cost, &rp.Author, &rp.TotalScore); err != nil {
			return nil, fmt.Errorf("failed to scan ranked proposal: %w", err)
		}
		ranked = append(ranked, rp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ranked proposals: %w", err)
	}
	if len(ranked) == 0 {
		return nil, apperr.ErrProposalsNotFound
	}
	return ranked, nil
}

// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"

	"github.com/MarcoProfi00/budget-sociale/apperr"
	"github.com/MarcoProfi00/budget-sociale/models"
)

// VoteStore handles preference votes during phase 2.
type VoteStore struct {
	db *sql.DB
}

func NewVoteStore(db *sql.DB) *VoteStore {
	return &VoteStore{db: db}
}

// Cast records a score for a proposal. A voter cannot vote their own
// proposal, and the (voter, proposal) primary key rejects a second vote.
func (s *VoteStore) Cast(voterID, proposalID string, score int) error {
	if score < 1 || score > 3 {
		return apperr.ErrInvalidScore
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := requirePhase(tx, models.PhaseVoting); err != nil {
		return err
	}

	var authorID string
	err = tx.QueryRow(`
		SELECT author_id FROM proposal WHERE id = $1
	`, proposalID).Scan(&authorID)
	if err == sql.ErrNoRows {
		return apperr.ErrProposalsNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to query proposal author: %w", err)
	}
	if authorID == voterID {
		return apperr.ErrSelfVote
	}

	_, err = tx.Exec(`
		INSERT INTO vote (voter_id, proposal_id, score)
		VALUES ($1, $2, $3)
	`, voterID, proposalID, score)
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.ErrDuplicateVote
		}
		return fmt.Errorf("failed to insert vote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit vote: %w", err)
	}
	return nil
}

// Revoke deletes the voter's vote on a proposal. Phase 2 only.
func (s *VoteStore) Revoke(voterID, proposalID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := requirePhase(tx, models.PhaseVoting); err != nil {
		return err
	}

	res, err := tx.Exec(`
		DELETE FROM vote WHERE voter_id = $1 AND proposal_id = $2
	`, voterID, proposalID)
	if err != nil {
		return fmt.Errorf("failed to delete vote: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return apperr.ErrVotesNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit revoke: %w", err)
	}
	return nil
}

// ByVoter returns the voter's own votes joined with the voted proposals.
// Zero rows is surfaced as a not-found error, matching the reference.
func (s *VoteStore) ByVoter(voterID string) ([]models.VotePreference, error) {
	rows, err := s.db.Query(`
		SELECT p.id, p.description, p.cost, v.score
		FROM vote v
		JOIN proposal p ON p.id = v.proposal_id
		WHERE v.voter_id = $1
	`, voterID)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	var prefs []models.VotePreference
	for rows.Next() {
		var pref models.VotePreference
		if err := rows.Scan(&pref.ProposalID, &pref.Description, &pref.Cost, &pref.Score); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		prefs = append(prefs, pref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate votes: %w", err)
	}
	if len(prefs) == 0 {
		return nil, apperr.ErrVotesNotFound
	}
	return prefs, nil
}

// AggregateScores returns every proposal left-joined with its votes, with
// total_score = COALESCE(SUM(score), 0), ordered by total_score descending.
// Ties keep the natural row order of the engine.
func (s *VoteStore) AggregateScores() ([]models.ProposalScore, error) {
	return aggregateScores(s.db)
}

type dbQuerier interface {
	Query(query string, args ...any) (*sql.Rows, error)
}

func aggregateScores(q dbQuerier) ([]models.ProposalScore, error) {
	rows, err := q.Query(`
		SELECT p.id, p.author_id, p.description, p.cost, p.approved,
		       COALESCE(SUM(v.score), 0) AS total_score
		FROM proposal p
		LEFT JOIN vote v ON v.proposal_id = p.id
		GROUP BY p.id, p.author_id, p.description, p.cost, p.approved
		ORDER BY total_score DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate scores: %w", err)
	}
	defer rows.Close()

	var scored []models.ProposalScore
	for rows.Next() {
		var ps models.ProposalScore
		err := rows.Scan(&ps.ID, &ps.AuthorID, &ps.Description, &ps.Cost, &ps.Approved, &ps.TotalScore)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scored proposal: %w", err)
		}
		scored = append(scored, ps)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scored proposals: %w", err)
	}
	return scored, nil
}

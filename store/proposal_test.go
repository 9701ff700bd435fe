// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/MarcoProfi00/budget-sociale/apperr"
	"github.com/MarcoProfi00/budget-sociale/models"
	"github.com/MarcoProfi00/budget-sociale/testutil"
)

func TestCreateProposal_Validation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := NewProposalStore(conn)
	author := testutil.CreateTestUser(t, conn, "author", models.RoleMember)
	testutil.CreateTestCycle(t, conn, 100, models.PhaseProposals)

	tests := []struct {
		name        string
		description string
		cost        float64
		wantErr     error
	}{
		{"empty description", "", 10, apperr.ErrInvalidDescription},
		{"blank description", "   ", 10, apperr.ErrInvalidDescription},
		{"too long", strings.Repeat("x", 51), 10, apperr.ErrInvalidDescription},
		{"purely numeric", "100", 10, apperr.ErrInvalidDescription},
		{"numeric with decimals", "3.14", 10, apperr.ErrInvalidDescription},
		{"zero cost", "Fix the gym roof", 0, apperr.ErrInvalidCost},
		{"negative cost", "Fix the gym roof", -1, apperr.ErrInvalidCost},
		{"cost over budget", "Fix the gym roof", 101, apperr.ErrCostOverBudget},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Create(author, tc.description, tc.cost)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCreateProposal_RoundTrip(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := NewProposalStore(conn)
	author := testutil.CreateTestUser(t, conn, "author", models.RoleMember)
	testutil.CreateTestCycle(t, conn, 100, models.PhaseProposals)

	// Cost boundary is inclusive: cost == budget succeeds
	id, err := s.Create(author, "Repaint the kindergarten", 100)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	p, err := s.ByID(id)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if p.Description != "Repaint the kindergarten" || p.Cost != 100 || p.AuthorID != author {
		t.Errorf("round trip mismatch: %+v", p)
	}
	if p.Approved {
		t.Error("new proposal must not be approved")
	}
}

func TestCreateProposal_DuplicateDescription(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := NewProposalStore(conn)
	a := testutil.CreateTestUser(t, conn, "a", models.RoleMember)
	b := testutil.CreateTestUser(t, conn, "b", models.RoleMember)
	testutil.CreateTestCycle(t, conn, 100, models.PhaseProposals)

	if _, err := s.Create(a, "Community garden", 20); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Duplicate across authors is rejected too
	if _, err := s.Create(b, "Community garden", 30); !errors.Is(err, apperr.ErrProposalExists) {
		t.Errorf("expected ErrProposalExists, got %v", err)
	}
}

func TestCreateProposal_AuthorCap(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := NewProposalStore(conn)
	author := testutil.CreateTestUser(t, conn, "author", models.RoleMember)
	testutil.CreateTestCycle(t, conn, 100, models.PhaseProposals)

	for i, desc := range []string{"First idea", "Second idea", "Third idea"} {
		if _, err := s.Create(author, desc, 10); err != nil {
			t.Fatalf("create %d failed: %v", i+1, err)
		}
	}

	if _, err := s.Create(author, "Fourth idea", 10); !errors.Is(err, apperr.ErrProposalLimit) {
		t.Errorf("expected ErrProposalLimit on 4th proposal, got %v", err)
	}
}

func TestCreateProposal_PhaseGating(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := NewProposalStore(conn)
	author := testutil.CreateTestUser(t, conn, "author", models.RoleMember)

	// No cycle at all
	if _, err := s.Create(author, "Too early", 10); !errors.Is(err, apperr.ErrBudgetNotSet) {
		t.Errorf("expected ErrBudgetNotSet, got %v", err)
	}

	testutil.CreateTestCycle(t, conn, 100, models.PhaseBudgetSetup)
	for _, phase := range []int{models.PhaseBudgetSetup, models.PhaseVoting, models.PhaseClosed} {
		testutil.SetTestPhase(t, conn, phase)
		if _, err := s.Create(author, "Wrong phase idea", 10); !errors.Is(err, apperr.ErrWrongPhase) {
			t.Errorf("phase %d: expected ErrWrongPhase, got %v", phase, err)
		}
	}
}

func TestUpdateProposal(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := NewProposalStore(conn)
	owner := testutil.CreateTestUser(t, conn, "owner", models.RoleMember)
	other := testutil.CreateTestUser(t, conn, "other", models.RoleMember)
	testutil.CreateTestCycle(t, conn, 100, models.PhaseProposals)

	id := testutil.CreateTestProposal(t, conn, owner, "Original text", 10)

	// Pretend it survived an approval round
	if _, err := conn.Exec(`UPDATE proposal SET approved = $1 WHERE id = $2`, true, id); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if err := s.Update(other, id, "Hijacked", 5); !errors.Is(err, apperr.ErrNotOwner) {
		t.Errorf("expected ErrNotOwner for other user, got %v", err)
	}

	if err := s.Update(owner, "missing-id", "Whatever", 5); !errors.Is(err, apperr.ErrNotOwner) {
		t.Errorf("expected ErrNotOwner for unknown id, got %v", err)
	}

	if err := s.Update(owner, id, "Revised text", 25); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	p, err := s.ByID(id)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if p.Description != "Revised text" || p.Cost != 25 {
		t.Errorf("update not applied: %+v", p)
	}
	if p.Approved {
		t.Error("update must force-reset the approved flag")
	}

	testutil.SetTestPhase(t, conn, models.PhaseVoting)
	if err := s.Update(owner, id, "Too late", 25); !errors.Is(err, apperr.ErrWrongPhase) {
		t.Errorf("expected ErrWrongPhase in phase 2, got %v", err)
	}
}

func TestDeleteProposal(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := NewProposalStore(conn)
	owner := testutil.CreateTestUser(t, conn, "owner", models.RoleMember)
	other := testutil.CreateTestUser(t, conn, "other", models.RoleMember)
	testutil.CreateTestCycle(t, conn, 100, models.PhaseProposals)

	id := testutil.CreateTestProposal(t, conn, owner, "Short-lived idea", 10)

	if _, err := s.Delete(other, id); !errors.Is(err, apperr.ErrNotOwner) {
		t.Errorf("expected ErrNotOwner for other user, got %v", err)
	}

	n, err := s.Delete(owner, id)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 affected row, got %d", n)
	}

	if _, err := s.ByID(id); !errors.Is(err, apperr.ErrProposalsNotFound) {
		t.Errorf("expected ErrProposalsNotFound after delete, got %v", err)
	}
}

func TestListProposals_EmptyIsError(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := NewProposalStore(conn)
	author := testutil.CreateTestUser(t, conn, "author", models.RoleMember)

	// Zero rows is surfaced as not-found, as in the reference system
	if _, err := s.ByAuthor(author); !errors.Is(err, apperr.ErrProposalsNotFound) {
		t.Errorf("expected ErrProposalsNotFound for ByAuthor, got %v", err)
	}
	if _, err := s.All(); !errors.Is(err, apperr.ErrProposalsNotFound) {
		t.Errorf("expected ErrProposalsNotFound for All, got %v", err)
	}

	testutil.CreateTestProposal(t, conn, author, "Lone proposal", 10)

	mine, err := s.ByAuthor(author)
	if err != nil {
		t.Fatalf("by author failed: %v", err)
	}
	if len(mine) != 1 {
		t.Errorf("expected 1 proposal, got %d", len(mine))
	}

	all, err := s.All()
	if err != nil {
		t.Fatalf("all failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 proposal, got %d", len(all))
	}
}

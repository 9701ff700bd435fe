// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"testing"

	"github.com/MarcoProfi00/budget-sociale/apperr"
	"github.com/MarcoProfi00/budget-sociale/models"
	"github.com/MarcoProfi00/budget-sociale/testutil"
)

func TestInitBudget(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := NewBudgetStore(conn)

	if err := s.InitBudget(models.RoleMember, 100); !errors.Is(err, apperr.ErrNotAdmin) {
		t.Errorf("expected ErrNotAdmin for member, got %v", err)
	}

	if err := s.InitBudget(models.RoleAdmin, -5); !errors.Is(err, apperr.ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount for negative amount, got %v", err)
	}

	if err := s.InitBudget(models.RoleAdmin, 100); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cycle, err := s.GetCycle()
	if err != nil {
		t.Fatalf("get cycle failed: %v", err)
	}
	if cycle.Amount != 100 || cycle.Phase != models.PhaseBudgetSetup {
		t.Errorf("expected amount=100 phase=0, got %+v", cycle)
	}

	// Exactly one active cycle at a time
	if err := s.InitBudget(models.RoleAdmin, 200); !errors.Is(err, apperr.ErrBudgetExists) {
		t.Errorf("expected ErrBudgetExists on second init, got %v", err)
	}
}

func TestGetCycle_Placeholder(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := NewBudgetStore(conn)

	// Uninitialized state reads as the zero placeholder, not an error
	cycle, err := s.GetCycle()
	if err != nil {
		t.Fatalf("get cycle failed: %v", err)
	}
	if cycle.Amount != 0 || cycle.Phase != 0 {
		t.Errorf("expected zero placeholder, got %+v", cycle)
	}
}

func TestAdvancePhase(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := NewBudgetStore(conn)

	if _, err := s.AdvancePhase(models.RoleAdmin); !errors.Is(err, apperr.ErrBudgetNotSet) {
		t.Errorf("expected ErrBudgetNotSet before init, got %v", err)
	}

	if err := s.InitBudget(models.RoleAdmin, 100); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if _, err := s.AdvancePhase(models.RoleMember); !errors.Is(err, apperr.ErrNotAdmin) {
		t.Errorf("expected ErrNotAdmin for member, got %v", err)
	}

	// Three advances walk 0 -> 1 -> 2 -> 3
	for want := 1; want <= 3; want++ {
		got, err := s.AdvancePhase(models.RoleAdmin)
		if err != nil {
			t.Fatalf("advance to %d failed: %v", want, err)
		}
		if got != want {
			t.Errorf("expected phase %d, got %d", want, got)
		}
	}

	// The fourth advance hits the terminal phase
	if _, err := s.AdvancePhase(models.RoleAdmin); !errors.Is(err, apperr.ErrPhaseLimit) {
		t.Errorf("expected ErrPhaseLimit at phase 3, got %v", err)
	}
}

func TestReset(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := NewBudgetStore(conn)

	author := testutil.CreateTestUser(t, conn, "author", models.RoleMember)
	voter := testutil.CreateTestUser(t, conn, "voter", models.RoleMember)

	testutil.CreateTestCycle(t, conn, 100, models.PhaseVoting)
	proposalID := testutil.CreateTestProposal(t, conn, author, "New library benches", 40)
	testutil.CreateTestVote(t, conn, voter, proposalID, 3)

	if err := s.Reset(models.RoleMember); !errors.Is(err, apperr.ErrNotAdmin) {
		t.Errorf("expected ErrNotAdmin for member, got %v", err)
	}

	// Reset is only legal once the process is closed
	if err := s.Reset(models.RoleAdmin); !errors.Is(err, apperr.ErrWrongPhase) {
		t.Errorf("expected ErrWrongPhase at phase 2, got %v", err)
	}

	testutil.SetTestPhase(t, conn, models.PhaseClosed)
	if err := s.Reset(models.RoleAdmin); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	for _, table := range []string{"vote", "proposal", "budget_cycle"} {
		var count int
		if err := conn.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&count); err != nil {
			t.Fatalf("count %s failed: %v", table, err)
		}
		if count != 0 {
			t.Errorf("expected %s to be empty after reset, found %d rows", table, count)
		}
	}

	// Back to the zero placeholder
	cycle, err := s.GetCycle()
	if err != nil {
		t.Fatalf("get cycle failed: %v", err)
	}
	if cycle.Amount != 0 || cycle.Phase != 0 {
		t.Errorf("expected zero placeholder after reset, got %+v", cycle)
	}

	// A second reset has nothing to act on
	if err := s.Reset(models.RoleAdmin); !errors.Is(err, apperr.ErrBudgetNotSet) {
		t.Errorf("expected ErrBudgetNotSet after reset, got %v", err)
	}
}

// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MarcoProfi00/budget-sociale/auth"
	"github.com/MarcoProfi00/budget-sociale/cliparse"
	"github.com/MarcoProfi00/budget-sociale/db"
	"github.com/MarcoProfi00/budget-sociale/models"
)

// SetupTestDB creates a private in-memory sqlite database with the full
// schema. Each call gets its own database, so tests never interfere.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", auth.NewID())
	conn, err := db.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3001,
		DatabaseURL:  "file:test?mode=memory",
		DatabaseType: "sqlite",
		SessionSalt:  "test-session-salt",
	}
}

// CreateTestUser inserts a user with throwaway credentials and returns its
// id. Use CreateTestUserWithPassword when the test needs to log in.
func CreateTestUser(t *testing.T, conn *sql.DB, name, role string) string {
	t.Helper()

	id := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO app_user (id, name, surname, role, username, password_hash, salt)
		VALUES ($1, $2, 'Test', $3, $4, '00', 'ab')
	`, id, name, role, name+"@test.local")
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

// CreateTestUserWithPassword inserts a user with a real scrypt hash.
func CreateTestUserWithPassword(t *testing.T, conn *sql.DB, name, role, username, password string) string {
	t.Helper()

	salt, err := auth.GenerateSalt()
	if err != nil {
		t.Fatalf("Failed to generate salt: %v", err)
	}
	hash, err := auth.HashPassword(password, salt)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	id := auth.NewID()
	_, err = conn.Exec(`
		INSERT INTO app_user (id, name, surname, role, username, password_hash, salt)
		VALUES ($1, $2, 'Test', $3, $4, $5, $6)
	`, id, name, role, username, hash, salt)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

// CreateTestCycle inserts the singleton budget cycle at the given phase.
func CreateTestCycle(t *testing.T, conn *sql.DB, amount float64, phase int) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO budget_cycle (id, amount, phase)
		VALUES ($1, $2, $3)
	`, models.CycleID, amount, phase)
	if err != nil {
		t.Fatalf("Failed to create test cycle: %v", err)
	}
}

// SetTestPhase moves the cycle to a phase directly, bypassing the store.
func SetTestPhase(t *testing.T, conn *sql.DB, phase int) {
	t.Helper()

	_, err := conn.Exec(`
		UPDATE budget_cycle SET phase = $1 WHERE id = $2
	`, phase, models.CycleID)
	if err != nil {
		t.Fatalf("Failed to set test phase: %v", err)
	}
}

// CreateTestProposal inserts a proposal row and returns its id.
func CreateTestProposal(t *testing.T, conn *sql.DB, authorID, description string, cost float64) string {
	t.Helper()

	id := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO proposal (id, author_id, description, cost, approved)
		VALUES ($1, $2, $3, $4, $5)
	`, id, authorID, description, cost, false)
	if err != nil {
		t.Fatalf("Failed to create test proposal: %v", err)
	}

	return id
}

// CreateTestVote inserts a vote row.
func CreateTestVote(t *testing.T, conn *sql.DB, voterID, proposalID string, score int) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO vote (voter_id, proposal_id, score)
		VALUES ($1, $2, $3)
	`, voterID, proposalID, score)
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// WithSession attaches a valid session cookie for the user to the request.
func WithSession(req *http.Request, userID string, cfg cliparse.Config) *http.Request {
	req.AddCookie(&http.Cookie{
		Name:  auth.SessionCookie,
		Value: auth.GenerateSessionToken(userID, cfg.SessionSalt),
	})
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

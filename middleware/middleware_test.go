// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MarcoProfi00/budget-sociale/apperr"
	"github.com/MarcoProfi00/budget-sociale/models"
	"github.com/MarcoProfi00/budget-sociale/testutil"
)

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusCreated, map[string]string{"hello": "world"})

	testutil.AssertStatus(t, w, http.StatusCreated)
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	var body map[string]string
	testutil.AssertJSON(t, w, &body)
	if body["hello"] != "world" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusNotFound, "nothing here")

	testutil.AssertStatus(t, w, http.StatusNotFound)

	var body models.ErrorResponse
	testutil.AssertJSON(t, w, &body)
	if body.Error != "Not Found" || body.Message != "nothing here" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestAppError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"business error", apperr.ErrSelfVote, http.StatusForbidden, "You cannot vote your proposal"},
		{"wrapped business error", fmt.Errorf("casting: %w", apperr.ErrDuplicateVote),
			http.StatusConflict, "casting: You cannot vote for the same proposal twice"},
		{"storage fault is masked", errors.New("connection refused"),
			http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			AppError(w, tc.err)

			testutil.AssertStatus(t, w, tc.wantStatus)

			var body models.ErrorResponse
			testutil.AssertJSON(t, w, &body)
			if body.Message != tc.wantMessage {
				t.Errorf("expected message %q, got %q", tc.wantMessage, body.Message)
			}
		})
	}
}

func TestParseJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"description":"x","cost":5}`))
	var body models.CreateProposalRequest
	if err := ParseJSONBody(req, &body); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if body.Description != "x" || body.Cost != 5 {
		t.Errorf("unexpected body: %+v", body)
	}

	req = httptest.NewRequest("POST", "/", strings.NewReader("not json"))
	if err := ParseJSONBody(req, &body); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}

func TestWithLogging_PassesThrough(t *testing.T) {
	called := false
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/", nil))

	if !called {
		t.Error("expected the wrapped handler to run")
	}
	testutil.AssertStatus(t, w, http.StatusTeapot)
}

func TestCORS(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS(inner)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("expected origin echoed back, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("expected credentials allowed, got %q", got)
	}

	// Preflight short-circuits before the inner handler
	req = httptest.NewRequest("OPTIONS", "/", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
}

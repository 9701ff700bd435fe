// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"testing"
)

func TestHashVerifyPassword(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("generate salt failed: %v", err)
	}

	hash, err := HashPassword("password", salt)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if len(hash) != 128 {
		t.Errorf("expected 128 hex chars for a 64-byte key, got %d", len(hash))
	}

	ok, err := VerifyPassword("password", salt, hash)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if !ok {
		t.Error("expected correct password to verify")
	}

	ok, err = VerifyPassword("not the password", salt, hash)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if ok {
		t.Error("expected wrong password to be rejected")
	}

	// A different salt must produce a different key
	ok, err = VerifyPassword("password", "other-salt", hash)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if ok {
		t.Error("expected mismatching salt to be rejected")
	}
}

func TestVerifyPassword_BadHash(t *testing.T) {
	if _, err := VerifyPassword("password", "salt", "not hex!"); !errors.Is(err, ErrBadPasswordHash) {
		t.Errorf("expected ErrBadPasswordHash, got %v", err)
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	token := GenerateSessionToken("user-123", "server-salt")

	userID, err := ParseSessionToken(token, "server-salt")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("expected user-123, got %q", userID)
	}
}

func TestParseSessionToken_Rejections(t *testing.T) {
	token := GenerateSessionToken("user-123", "server-salt")

	tests := []struct {
		name  string
		token string
		salt  string
	}{
		{"wrong salt", token, "other-salt"},
		{"tampered user id", "user-456" + token[len("user-123"):], "server-salt"},
		{"tampered signature", token[:len(token)-1] + "x", "server-salt"},
		{"no separator", "justonepart", "server-salt"},
		{"empty payload", ".sig", "server-salt"},
		{"empty signature", "user-123.", "server-salt"},
		{"empty token", "", "server-salt"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseSessionToken(tc.token, tc.salt); !errors.Is(err, ErrInvalidSession) {
				t.Errorf("expected ErrInvalidSession, got %v", err)
			}
		})
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("got empty id")
		}
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/scrypt"
)

var (
	ErrInvalidSession  = errors.New("invalid session token")
	ErrBadPasswordHash = errors.New("stored password hash is not valid hex")
)

// SessionCookie is the name of the authentication cookie.
const SessionCookie = "budget_session"

// scrypt parameters. Key length matches the 64-byte hashes in the user table.
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
)

// NewID returns a random unique ID for database records.
func NewID() string {
	return uuid.NewString()
}

// GenerateSalt creates a random hex salt for password hashing.
func GenerateSalt() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashPassword derives a 64-byte scrypt key from the password and salt,
// hex encoded for storage.
func HashPassword(password, salt string) (string, error) {
	key, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hex.EncodeToString(key), nil
}

// VerifyPassword checks password against a stored hex hash in constant time.
// A mismatch is (false, nil); errors are reserved for derivation failures.
func VerifyPassword(password, salt, storedHex string) (bool, error) {
	stored, err := hex.DecodeString(storedHex)
	if err != nil {
		return false, ErrBadPasswordHash
	}
	key, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}
	return hmac.Equal(stored, key), nil
}

// GenerateSessionToken creates an HMAC-signed token carrying the user ID.
// Deterministic per (userID, salt), so no session table is needed.
func GenerateSessionToken(userID, salt string) string {
	return userID + "." + sign(userID, salt)
}

// ParseSessionToken validates the signature and returns the user ID.
func ParseSessionToken(token, salt string) (string, error) {
	i := strings.LastIndexByte(token, '.')
	if i <= 0 || i == len(token)-1 {
		return "", ErrInvalidSession
	}
	userID, sig := token[:i], token[i+1:]
	if !hmac.Equal([]byte(sig), []byte(sign(userID, salt))) {
		return "", ErrInvalidSession
	}
	return userID, nil
}

func sign(payload, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(payload))
	return strings.TrimRight(base64.URLEncoding.EncodeToString(h.Sum(nil)), "=")
}

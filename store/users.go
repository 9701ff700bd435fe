// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"

	"github.com/MarcoProfi00/budget-sociale/apperr"
	"github.com/MarcoProfi00/budget-sociale/auth"
	"github.com/MarcoProfi00/budget-sociale/models"
)

// UserStore reads user rows. Users are provisioned externally (or seeded);
// the core never mutates them.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// ByID returns the public record of a user.
func (s *UserStore) ByID(id string) (models.PublicUser, error) {
	var u models.PublicUser
	err := s.db.QueryRow(`
		SELECT id, name, surname, role, username FROM app_user WHERE id = $1
	`, id).Scan(&u.ID, &u.Name, &u.Surname, &u.Role, &u.Username)
	if err == sql.ErrNoRows {
		return models.PublicUser{}, apperr.ErrUserNotFound
	}
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("failed to query user: %w", err)
	}
	return u, nil
}

// ByCredentials checks username and password against the stored scrypt hash.
// A wrong username or password resolves to ok=false without error; only I/O
// and derivation failures return an error.
func (s *UserStore) ByCredentials(username, password string) (models.PublicUser, bool, error) {
	var u models.User
	err := s.db.QueryRow(`
		SELECT id, name, surname, role, username, password_hash, salt
		FROM app_user WHERE username = $1
	`, username).Scan(&u.ID, &u.Name, &u.Surname, &u.Role, &u.Username, &u.PasswordHash, &u.Salt)
	if err == sql.ErrNoRows {
		return models.PublicUser{}, false, nil
	}
	if err != nil {
		return models.PublicUser{}, false, fmt.Errorf("failed to query user: %w", err)
	}

	ok, err := auth.VerifyPassword(password, u.Salt, u.PasswordHash)
	if err != nil {
		return models.PublicUser{}, false, err
	}
	if !ok {
		return models.PublicUser{}, false, nil
	}

	public := models.PublicUser{
		ID:       u.ID,
		Name:     u.Name,
		Surname:  u.Surname,
		Role:     u.Role,
		Username: u.Username,
	}
	return public, true, nil
}

// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/MarcoProfi00/budget-sociale/auth"
	"github.com/MarcoProfi00/budget-sociale/models"
)

type seedUser struct {
	name     string
	surname  string
	role     string
	username string
	password string
}

// Demo accounts matching the reference dataset: one admin, three members.
var seedUsers = []seedUser{
	{"Mario", "Rossi", models.RoleAdmin, "mario.rossi@polito.it", "password"},
	{"Luigi", "Verdi", models.RoleMember, "luigi.verdi@polito.it", "password"},
	{"Anna", "Bianchi", models.RoleMember, "anna.bianchi@polito.it", "password"},
	{"Carlo", "Neri", models.RoleMember, "carlo.neri@polito.it", "password"},
}

// SeedUsers inserts the demo accounts if the user table is empty.
// Returns the number of users inserted.
func SeedUsers(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM app_user`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	for _, u := range seedUsers {
		salt, err := auth.GenerateSalt()
		if err != nil {
			return 0, err
		}
		hash, err := auth.HashPassword(u.password, salt)
		if err != nil {
			return 0, err
		}
		_, err = db.Exec(`
			INSERT INTO app_user (id, name, surname, role, username, password_hash, salt)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, auth.NewID(), u.name, u.surname, u.role, u.username, hash, salt)
		if err != nil {
			return 0, fmt.Errorf("failed to seed user %s: %w", u.username, err)
		}
	}

	return len(seedUsers), nil
}

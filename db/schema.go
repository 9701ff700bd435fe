// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured database. dbType is "sqlite" or "postgres".
func Open(dbType, url string) (*sql.DB, error) {
	driver := "sqlite"
	if dbType == "postgres" {
		driver = "postgres"
	}
	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}
	if dbType == "sqlite" {
		// modernc serializes writes itself; one connection avoids
		// table-lock errors under the connection pool.
		conn.SetMaxOpenConns(1)
	}
	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The SQL is kept to the dialect subset both drivers accept.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Users
CREATE TABLE IF NOT EXISTS app_user (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    surname TEXT NOT NULL,
    role TEXT NOT NULL CHECK (role IN ('Admin', 'Member')),
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    salt TEXT NOT NULL
);

-- Budget cycle (singleton row, fixed id)
CREATE TABLE IF NOT EXISTS budget_cycle (
    id TEXT PRIMARY KEY,
    amount REAL NOT NULL CHECK (amount >= 0),
    phase INTEGER NOT NULL DEFAULT 0 CHECK (phase IN (0, 1, 2, 3))
);

-- Proposals
CREATE TABLE IF NOT EXISTS proposal (
    id TEXT PRIMARY KEY,
    author_id TEXT NOT NULL REFERENCES app_user(id),
    description TEXT NOT NULL UNIQUE,
    cost REAL NOT NULL CHECK (cost > 0),
    approved BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS idx_proposal_author_id ON proposal(author_id);

-- Votes
CREATE TABLE IF NOT EXISTS vote (
    voter_id TEXT NOT NULL REFERENCES app_user(id),
    proposal_id TEXT NOT NULL REFERENCES proposal(id) ON DELETE CASCADE,
    score INTEGER NOT NULL CHECK (score IN (1, 2, 3)),
    PRIMARY KEY (voter_id, proposal_id)
);

CREATE INDEX IF NOT EXISTS idx_vote_proposal_id ON vote(proposal_id);
`

// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation, and seeding.

# Opening a Connection

Open selects the driver from the configured type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

SQLite uses the pure-Go modernc.org/sqlite driver with a single
connection; PostgreSQL uses lib/pq. The schema SQL is kept to the
dialect subset both drivers accept.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - app_user: Accounts with role (Admin or Member) and scrypt credentials
  - budget_cycle: Singleton row holding the amount and current phase
  - proposal: Member proposals with unique descriptions and approval flag
  - vote: One score (1-3) per voter per proposal

# Relationships

	app_user 1──* proposal
	app_user 1──* vote
	proposal 1──* vote

Votes cascade when their proposal is deleted.

# Seeding

SeedUsers inserts four demo accounts (one admin, three members) when the
user table is empty, for development and demos:

	n, err := db.SeedUsers(conn)
*/
package db

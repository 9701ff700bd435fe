// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3001)
  - DatabaseURL: SQLite DSN or PostgreSQL connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - SessionSalt: Secret for session cookie HMAC (required)
  - SeedUsers: Seed demo accounts on startup

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-session-salt Session token salt
	-seed         Seed demo users

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	SESSION_SALT  → -session-salt
	SEED_USERS    → -seed

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing or invalid:

  - DATABASE_URL must be provided
  - SESSION_SALT must be provided
  - DATABASE_TYPE must be "sqlite" or "postgres"
*/
package cliparse

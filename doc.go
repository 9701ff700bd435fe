// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Budget Sociale API server.

Budget Sociale is a participatory budgeting service: an administrator
defines a budget, members submit cost-bounded proposals, everyone scores
the other members' proposals, and a greedy allocation pass decides which
proposals get funded.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=budget.db SESSION_SALT=... go run main.go

Or with flags:

	go run main.go -p 3001 -d budget.db -session-salt "..."

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file/DSN or PostgreSQL connection string
  - SESSION_SALT (-session-salt): Secret for session cookie HMAC

Optional settings:

  - PORT (-p): Server port (default: 3001)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - SEED_USERS (-seed): Seed demo accounts when the user table is empty

# The Budget Process

A single budget cycle walks through four phases:

	0  budget setup    admin defines the amount
	1  proposals       members submit up to 3 proposals each
	2  voting          members score other members' proposals 1-3
	3  closed          admin runs the allocation, results are published

Only the admin advances phases, and phases never move backwards. Once
closed, the admin can restart the whole process from scratch.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (sessions, budget, proposals, votes, approval)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, error mapping
  - store: Business rules and database access
  - apperr: The business-error taxonomy
  - models: Request/response types
  - auth: Password hashing and session tokens
  - db: Schema creation and seeding
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Employee Polls API server.

Employee Polls is a two-option voting service: users register an account,
author "would you rather" style questions, cast a single irrevocable vote
per question, and compare participation on a leaderboard.

# Starting the Server

The server runs memory-only by default:

	go run main.go

Or with write-through persistence:

	DATABASE_URL=postgres://... DATABASE_TYPE=postgres go run main.go

Or with flags:

	go run main.go -p 5000 -d polls.db -t sqlite

A .env file in the working directory is loaded before flags are parsed.

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_URL (-d): Database location; empty keeps all state in memory
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)

# Architecture

The server is a thin HTTP layer over an in-memory poll state engine:

  - store: canonical entity state (users, questions) behind get/put
  - engine: registrar, question authoring, voting, leaderboard ranking
  - handlers: HTTP request handlers (users, questions, answers, leaderboard)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: domain, request, and response types
  - auth: password hashing
  - db: schema creation and write-through persistence
  - cliparse: configuration parsing

The engine owns all invariants (username uniqueness, one vote per user per
question, answered-set consistency). When a database is configured, every
committed transition is mirrored to it and reloaded on the next start; the
in-memory store remains the source of truth while running.

See package documentation for each component.
*/
package main

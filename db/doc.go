// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db provides schema creation and write-through SQL persistence.

# Schema

CreateSchema creates the users, questions, and answers tables. The DDL is
portable between the two supported drivers:

  - github.com/lib/pq ("postgres")
  - modernc.org/sqlite ("sqlite")

# Write-Through Store

Store implements engine.Persister over an open *sql.DB:

	p := db.NewStore(conn, cfg.DatabaseType)
	e := engine.New(st, p)

Each committed engine transition maps to a single insert: a user row, a
question row, or an answer row. A vote is one answer row; the option voter
set and the user's answered set are both rebuilt from answers on load, so
the two can never diverge in storage.

# Startup Load

Load returns all persisted users and questions in entity form for seeding
the in-memory store:

	users, questions, err := p.Load()

Queries use ? placeholders; rebind rewrites them to $n for postgres.
*/
package db

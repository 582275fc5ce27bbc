// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Opening

Open picks the driver from the configured database type:

	conn, err := db.Open("sqlite", "aita-judge.db")

Supported types are "sqlite" (modernc.org/sqlite, the default) and
"postgres" (lib/pq). Queries are written with ? placeholders; the
connection wrapper rebinds them to $N for Postgres.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - visitor: One row per claimed visitor token
  - dataset_load: Audit row per dataset load, source of the version counter
  - submission: One accepted submission per visitor per dataset version,
    with session aggregates and the rendered report snapshot
  - response: Per-scenario judgment rows of a submission

# Relationships

	visitor 1──* submission
	submission 1──* response

# Constraints

The UNIQUE (visitor_token, dataset_version) constraint on submission is
the one-shot submission guard: it cannot be raced past, and a dataset
reload (new version) naturally resets it.
*/
package db

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Visitors
CREATE TABLE IF NOT EXISTS visitor (
    token TEXT PRIMARY KEY,
    created_at TIMESTAMP NOT NULL,
    ip_hash TEXT,
    user_agent TEXT
);

-- Dataset loads (audit trail; version counter survives restarts)
CREATE TABLE IF NOT EXISTS dataset_load (
    version BIGINT PRIMARY KEY,
    source TEXT NOT NULL,
    scenario_count INTEGER NOT NULL,
    loaded_at TIMESTAMP NOT NULL
);

-- Submissions (one accepted per visitor per dataset version)
CREATE TABLE IF NOT EXISTS submission (
    id TEXT PRIMARY KEY,
    visitor_token TEXT NOT NULL REFERENCES visitor(token) ON DELETE CASCADE,
    dataset_version BIGINT NOT NULL,
    answered_count INTEGER NOT NULL CHECK (answered_count > 0),
    agreement_count INTEGER NOT NULL,
    yta_count INTEGER NOT NULL DEFAULT 0,
    nta_count INTEGER NOT NULL DEFAULT 0,
    esh_count INTEGER NOT NULL DEFAULT 0,
    nah_count INTEGER NOT NULL DEFAULT 0,
    info_count INTEGER NOT NULL DEFAULT 0,
    avg_alignment REAL NOT NULL,
    harsh_count INTEGER NOT NULL,
    soft_count INTEGER NOT NULL,
    other_count INTEGER NOT NULL,
    report_json TEXT NOT NULL,
    submitted_at TIMESTAMP NOT NULL,
    ip_hash TEXT,
    user_agent TEXT,
    UNIQUE (visitor_token, dataset_version)
);

CREATE INDEX IF NOT EXISTS idx_submission_visitor ON submission(visitor_token);
CREATE INDEX IF NOT EXISTS idx_submission_version ON submission(dataset_version);

-- Per-scenario responses
CREATE TABLE IF NOT EXISTS response (
    submission_id TEXT NOT NULL REFERENCES submission(id) ON DELETE CASCADE,
    scenario_id TEXT NOT NULL,
    choice TEXT NOT NULL,
    reference_verdict TEXT NOT NULL,
    agreed BOOLEAN NOT NULL,
    align_percent REAL NOT NULL,
    PRIMARY KEY (submission_id, scenario_id)
);

CREATE INDEX IF NOT EXISTS idx_response_scenario ON response(scenario_id);
`

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the aita-judge API server.

aita-judge serves an "Am I the Asshole?" judgment survey: visitors judge a
daily set of Reddit AITA scenarios on the five-way YTA/NTA/ESH/NAH/INFO
scale, and get back a report comparing their judgments against the
reference population (agreement rate, popularity alignment, judgment
profile, disagreement style, and YTA/NTA tendency).

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	FEED_URL=https://... ADMIN_KEY_SALT=... go run main.go

Or with flags:

	go run main.go -p 3319 -feed "https://..." -admin-salt "..."

A .env file in the working directory is loaded automatically.

# Configuration

Required settings:

  - FEED_URL (-feed): Scenario feed endpoint (JSON array)
  - ADMIN_KEY_SALT (-admin-salt): Secret for admin key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3319)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - DATABASE_URL (-d): Database path/connection string
  - SURVEY_CONFIG (-survey): Survey YAML overriding the embedded default
  - REFRESH_SCHEDULE (-refresh): Cron expression for periodic feed refresh

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (visitors, scenarios, judgments, study, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Token generation and validation
  - feed, dataset: Feed fetching, normalization, versioned in-memory store
  - judgment, session: Category scales and report computation
  - study: Embedded fixed-question survey variant
  - sink: Fire-and-forget forwarding of submissions to a form endpoint
  - surveyconf: YAML survey definition with validation

The dataset lives in memory and is fully replaced on every reload; the
database keeps visitors, submissions, per-scenario responses, and the
dataset load audit trail.
*/
package main

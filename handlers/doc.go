// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the judgment survey API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - VisitorHandler: Visitor token claims
  - ScenarioHandler: Current dataset retrieval
  - JudgmentHandler: Judgment submission and report retrieval
  - StudyHandler: Embedded study variant (questions and comparison)
  - AdminHandler: Dataset reload

Handlers are created via constructor functions:

	judgmentHandler := handlers.NewJudgmentHandler(conn, cfg, store, survey, submitter)

# Survey Flow

Visitors claim a token, judge the current scenarios, and submit once per
dataset version:

	POST /visitors/claim   → Claim (returns visitor_token)
	GET  /scenarios        → GetScenarios (dataset snapshot + version)
	POST /judgments        → Submit (computes and persists the report)
	GET  /submissions/mine → GetMine (latest stored report)

Submission requires the X-Visitor-Token header. A second submission against
the same dataset version returns 409; a reload re-opens submission.

# Study Variant

The embedded study serves fixed three-way questions with reference
population tallies. It is stateless and requires no token:

	GET  /study/questions → GetQuestions
	POST /study/compare   → Compare

# Admin Operations

Dataset reloads require the X-Admin-Key header:

	POST /dataset/reload → ReloadDataset

The key is an HMAC over AdminServiceID with the configured salt. Each
successful reload replaces the whole collection, bumps the dataset version,
and appends a dataset_load audit row.
*/
package handlers

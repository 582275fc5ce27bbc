// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the judgment survey API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(conn, cfg, store, loader, survey)

# Endpoints

Health:

	GET /health

Survey flow (public):

	POST /visitors/claim   - Issue a visitor token
	GET  /scenarios        - Current dataset snapshot
	POST /judgments        - Submit judgments (requires X-Visitor-Token)
	GET  /submissions/mine - Latest stored report (requires X-Visitor-Token)

Study variant (public, stateless):

	GET  /study/questions - Embedded question table
	POST /study/compare   - Compare answers against reference populations

Admin (requires X-Admin-Key):

	POST /dataset/reload - Refetch the feed and replace the dataset

# Handler Initialization

The router creates handler instances with dependency injection:

	visitorHandler := handlers.NewVisitorHandler(conn, cfg)
	scenarioHandler := handlers.NewScenarioHandler(store, survey)
	judgmentHandler := handlers.NewJudgmentHandler(conn, cfg, store, survey, submitter)
	studyHandler := handlers.NewStudyHandler(study.New(survey.Study))
	adminHandler := handlers.NewAdminHandler(conn, cfg, loader)

The sink submitter and study survey are built from the survey config; the
dataset store and loader are shared with main, which drives the initial
load and the optional cron refresh.
*/
package router

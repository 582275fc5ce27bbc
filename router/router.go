// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/aita-judge/cliparse"
	"github.com/danielhkuo/aita-judge/dataset"
	"github.com/danielhkuo/aita-judge/db"
	"github.com/danielhkuo/aita-judge/handlers"
	"github.com/danielhkuo/aita-judge/middleware"
	"github.com/danielhkuo/aita-judge/sink"
	"github.com/danielhkuo/aita-judge/study"
	"github.com/danielhkuo/aita-judge/surveyconf"
)

func NewRouter(conn *db.DB, cfg cliparse.Config, store *dataset.Store, loader *dataset.Loader, survey surveyconf.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	visitorHandler := handlers.NewVisitorHandler(conn, cfg)
	scenarioHandler := handlers.NewScenarioHandler(store, survey)
	judgmentHandler := handlers.NewJudgmentHandler(conn, cfg, store, survey, sink.New(nil, survey.Sink))
	studyHandler := handlers.NewStudyHandler(study.New(survey.Study))
	adminHandler := handlers.NewAdminHandler(conn, cfg, loader)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Visitor and survey flow (public)
	mux.HandleFunc("POST /visitors/claim", middleware.WithLogging(visitorHandler.Claim))
	mux.HandleFunc("GET /scenarios", middleware.WithLogging(scenarioHandler.GetScenarios))
	mux.HandleFunc("POST /judgments", middleware.WithLogging(judgmentHandler.Submit))
	mux.HandleFunc("GET /submissions/mine", middleware.WithLogging(judgmentHandler.GetMine))

	// Embedded study variant (public, stateless)
	mux.HandleFunc("GET /study/questions", middleware.WithLogging(studyHandler.GetQuestions))
	mux.HandleFunc("POST /study/compare", middleware.WithLogging(studyHandler.Compare))

	// Admin operations (requires X-Admin-Key)
	mux.HandleFunc("POST /dataset/reload", middleware.WithLogging(adminHandler.ReloadDataset))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("aita-judge API v1"))
	})

	return mux
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/aita-judge/dataset"
	"github.com/danielhkuo/aita-judge/judgment"
	"github.com/danielhkuo/aita-judge/middleware"
	"github.com/danielhkuo/aita-judge/models"
	"github.com/danielhkuo/aita-judge/surveyconf"
)

// User-facing copy for empty and failed dataset states.
const (
	MessageNoScenarios = "No suitable scenarios were found. Check back later."
	MessageFeedFailed  = "Could not load scenarios. Please try again later."
)

type ScenarioHandler struct {
	store  *dataset.Store
	survey surveyconf.Config
}

func NewScenarioHandler(store *dataset.Store, survey surveyconf.Config) *ScenarioHandler {
	return &ScenarioHandler{store: store, survey: survey}
}

// GetScenarios handles GET /scenarios
// Returns the current dataset snapshot with its version. Clients must echo
// the same choices back against the same version when submitting.
func (h *ScenarioHandler) GetScenarios(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()

	if snap.Empty() && snap.Err != nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, MessageFeedFailed)
		return
	}

	resp := models.ScenariosResponse{
		DatasetVersion: snap.Version,
		Scenarios:      snap.Scenarios,
		Categories:     categoryNames(h.survey.CategorySet()),
	}
	if !snap.LoadedAt.IsZero() {
		resp.FetchedUTC = snap.LoadedAt.Format("2006-01-02 15:04 UTC")
	}
	if snap.Empty() {
		resp.Scenarios = []models.Scenario{}
		resp.Message = MessageNoScenarios
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

func categoryNames(set judgment.Set) []string {
	names := make([]string, len(set.Categories))
	for i, cat := range set.Categories {
		names[i] = string(cat)
	}
	return names
}

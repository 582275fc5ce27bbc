// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/aita-judge/dataset"
	"github.com/danielhkuo/aita-judge/models"
	"github.com/danielhkuo/aita-judge/testutil"
)

func TestGetScenarios(t *testing.T) {
	survey := testutil.GetTestSurvey(t)
	store := testutil.LoadTestDataset(testutil.TestScenarios())
	handler := NewScenarioHandler(store, survey)

	req := testutil.MakeRequest("GET", "/scenarios", nil, nil)
	w := httptest.NewRecorder()

	handler.GetScenarios(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", w.Code, w.Body.String())
	}

	var resp models.ScenariosResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.DatasetVersion != 1 {
		t.Errorf("Expected dataset version 1, got %d", resp.DatasetVersion)
	}
	if len(resp.Scenarios) != 4 {
		t.Errorf("Expected 4 scenarios, got %d", len(resp.Scenarios))
	}
	if len(resp.Categories) != 5 {
		t.Errorf("Expected 5 categories, got %v", resp.Categories)
	}
	if resp.Message != "" {
		t.Errorf("Expected no message, got %q", resp.Message)
	}
}

func TestGetScenarios_EmptyDataset(t *testing.T) {
	survey := testutil.GetTestSurvey(t)
	store := testutil.LoadTestDataset(nil)
	handler := NewScenarioHandler(store, survey)

	req := testutil.MakeRequest("GET", "/scenarios", nil, nil)
	w := httptest.NewRecorder()

	handler.GetScenarios(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 for empty dataset, got %d", w.Code)
	}

	var resp models.ScenariosResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if len(resp.Scenarios) != 0 {
		t.Errorf("Expected no scenarios, got %d", len(resp.Scenarios))
	}
	if resp.Message != MessageNoScenarios {
		t.Errorf("Expected message %q, got %q", MessageNoScenarios, resp.Message)
	}
}

func TestGetScenarios_FeedError(t *testing.T) {
	survey := testutil.GetTestSurvey(t)
	store := dataset.NewStore(0)
	store.RecordError(errors.New("feed unreachable"))
	handler := NewScenarioHandler(store, survey)

	req := testutil.MakeRequest("GET", "/scenarios", nil, nil)
	w := httptest.NewRecorder()

	handler.GetScenarios(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected status 503 when never loaded, got %d", w.Code)
	}
}

func TestGetScenarios_ErrorKeepsOldData(t *testing.T) {
	survey := testutil.GetTestSurvey(t)
	store := testutil.LoadTestDataset(testutil.TestScenarios())
	store.RecordError(errors.New("later fetch failed"))
	handler := NewScenarioHandler(store, survey)

	req := testutil.MakeRequest("GET", "/scenarios", nil, nil)
	w := httptest.NewRecorder()

	handler.GetScenarios(w, req)

	// A failed refresh never hides previously loaded data
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 with stale data, got %d", w.Code)
	}

	var resp models.ScenariosResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Scenarios) != 4 {
		t.Errorf("Expected 4 scenarios, got %d", len(resp.Scenarios))
	}
}

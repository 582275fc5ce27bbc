// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/aita-judge/dataset"
	"github.com/danielhkuo/aita-judge/db"
	"github.com/danielhkuo/aita-judge/models"
	"github.com/danielhkuo/aita-judge/sink"
	"github.com/danielhkuo/aita-judge/surveyconf"
	"github.com/danielhkuo/aita-judge/testutil"
)

func newJudgmentHandler(t *testing.T) (*JudgmentHandler, *db.DB, *dataset.Store) {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	survey := testutil.GetTestSurvey(t)
	store := testutil.LoadTestDataset(testutil.TestScenarios())
	submitter := sink.New(nil, surveyconf.SinkConfig{}) // disabled

	return NewJudgmentHandler(conn, cfg, store, survey, submitter), conn, store
}

func submitJudgments(handler *JudgmentHandler, token string, choices map[string]string) *httptest.ResponseRecorder {
	req := testutil.MakeRequest("POST", "/judgments",
		models.SubmitJudgmentsRequest{Choices: choices},
		map[string]string{"X-Visitor-Token": token})
	w := httptest.NewRecorder()
	handler.Submit(w, req)
	return w
}

func TestSubmitJudgments(t *testing.T) {
	handler, conn, _ := newJudgmentHandler(t)
	token := testutil.CreateTestVisitor(t, conn)

	w := submitJudgments(handler, token, map[string]string{
		"post-1": "YTA", // agrees, 70% alignment
		"post-2": "NTA", // agrees, 75% alignment
		"post-3": "YTA", // disagrees harshly, 15% alignment
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d. Body: %s", w.Code, w.Body.String())
	}

	var resp models.SubmitJudgmentsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.SubmissionID == "" {
		t.Error("Expected non-empty submission ID")
	}
	if resp.DatasetVersion != 1 {
		t.Errorf("Expected dataset version 1, got %d", resp.DatasetVersion)
	}

	report := resp.Report
	if report.AnsweredCount != 3 {
		t.Errorf("Expected 3 answered, got %d", report.AnsweredCount)
	}
	if report.TotalScenarios != 4 {
		t.Errorf("Expected 4 total scenarios, got %d", report.TotalScenarios)
	}
	if report.Agreement.Count != 2 {
		t.Errorf("Expected 2 agreements, got %d", report.Agreement.Count)
	}
	if report.Agreement.Percent != 66.7 {
		t.Errorf("Expected agreement 66.7, got %.1f", report.Agreement.Percent)
	}
	if report.Alignment.AveragePercent != 53.3 {
		t.Errorf("Expected alignment 53.3, got %.1f", report.Alignment.AveragePercent)
	}
	if report.Disagreements.Count != 1 || report.Disagreements.Harsh != 1 {
		t.Errorf("Expected 1 harsh disagreement, got %+v", report.Disagreements)
	}
	if !report.Tendency.Available {
		t.Error("Expected tendency to be available")
	}

	// Submission and responses should be persisted
	var answered int
	err := conn.QueryRow(`SELECT answered_count FROM submission WHERE id = ?`, resp.SubmissionID).Scan(&answered)
	if err != nil {
		t.Fatalf("Failed to query submission: %v", err)
	}
	if answered != 3 {
		t.Errorf("Expected persisted answered_count 3, got %d", answered)
	}

	var responses int
	err = conn.QueryRow(`SELECT COUNT(*) FROM response WHERE submission_id = ?`, resp.SubmissionID).Scan(&responses)
	if err != nil {
		t.Fatalf("Failed to count responses: %v", err)
	}
	if responses != 3 {
		t.Errorf("Expected 3 response rows, got %d", responses)
	}
}

func TestSubmitJudgments_RequiresToken(t *testing.T) {
	handler, _, _ := newJudgmentHandler(t)

	w := submitJudgments(handler, "", map[string]string{"post-1": "YTA"})

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without token, got %d", w.Code)
	}
}

func TestSubmitJudgments_UnknownToken(t *testing.T) {
	handler, _, _ := newJudgmentHandler(t)

	w := submitJudgments(handler, "never-claimed", map[string]string{"post-1": "YTA"})

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for unclaimed token, got %d", w.Code)
	}
}

func TestSubmitJudgments_EmptyChoices(t *testing.T) {
	handler, conn, _ := newJudgmentHandler(t)
	token := testutil.CreateTestVisitor(t, conn)

	w := submitJudgments(handler, token, map[string]string{})

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for empty choices, got %d", w.Code)
	}
}

func TestSubmitJudgments_UnknownScenario(t *testing.T) {
	handler, conn, _ := newJudgmentHandler(t)
	token := testutil.CreateTestVisitor(t, conn)

	w := submitJudgments(handler, token, map[string]string{"no-such-post": "YTA"})

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown scenario, got %d", w.Code)
	}
}

func TestSubmitJudgments_InvalidCategory(t *testing.T) {
	handler, conn, _ := newJudgmentHandler(t)
	token := testutil.CreateTestVisitor(t, conn)

	w := submitJudgments(handler, token, map[string]string{"post-1": "GUILTY"})

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for invalid category, got %d", w.Code)
	}
}

func TestSubmitJudgments_OncePerDatasetVersion(t *testing.T) {
	handler, conn, store := newJudgmentHandler(t)
	token := testutil.CreateTestVisitor(t, conn)

	first := submitJudgments(handler, token, map[string]string{"post-1": "YTA"})
	if first.Code != http.StatusCreated {
		t.Fatalf("First submission failed: %d. Body: %s", first.Code, first.Body.String())
	}

	second := submitJudgments(handler, token, map[string]string{"post-1": "NTA"})
	if second.Code != http.StatusConflict {
		t.Fatalf("Expected 409 for repeat submission, got %d", second.Code)
	}

	// A reload bumps the version and re-opens submission
	store.Replace(testutil.TestScenarios(), models.SourceFeed)

	third := submitJudgments(handler, token, map[string]string{"post-1": "NTA"})
	if third.Code != http.StatusCreated {
		t.Fatalf("Expected 201 after reload, got %d. Body: %s", third.Code, third.Body.String())
	}

	var resp models.SubmitJudgmentsResponse
	if err := json.NewDecoder(third.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.DatasetVersion != 2 {
		t.Errorf("Expected dataset version 2, got %d", resp.DatasetVersion)
	}
}

func TestSubmitJudgments_EmptyDataset(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	survey := testutil.GetTestSurvey(t)
	store := dataset.NewStore(0)
	handler := NewJudgmentHandler(conn, cfg, store, survey, sink.New(nil, surveyconf.SinkConfig{}))
	token := testutil.CreateTestVisitor(t, conn)

	w := submitJudgments(handler, token, map[string]string{"post-1": "YTA"})

	if w.Code != http.StatusConflict {
		t.Errorf("Expected 409 with no dataset loaded, got %d", w.Code)
	}
}

func TestGetMine(t *testing.T) {
	handler, conn, _ := newJudgmentHandler(t)
	token := testutil.CreateTestVisitor(t, conn)

	w := submitJudgments(handler, token, map[string]string{"post-1": "YTA", "post-2": "NTA"})
	if w.Code != http.StatusCreated {
		t.Fatalf("Submission failed: %d", w.Code)
	}

	req := testutil.MakeRequest("GET", "/submissions/mine", nil,
		map[string]string{"X-Visitor-Token": token})
	rec := httptest.NewRecorder()
	handler.GetMine(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", rec.Code, rec.Body.String())
	}

	var resp models.SubmissionResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Report.AnsweredCount != 2 {
		t.Errorf("Expected stored report with 2 answered, got %d", resp.Report.AnsweredCount)
	}
	if resp.Report.Agreement.Count != 2 {
		t.Errorf("Expected stored report with 2 agreements, got %d", resp.Report.Agreement.Count)
	}
}

func TestGetMine_NoSubmission(t *testing.T) {
	handler, conn, _ := newJudgmentHandler(t)
	token := testutil.CreateTestVisitor(t, conn)

	req := testutil.MakeRequest("GET", "/submissions/mine", nil,
		map[string]string{"X-Visitor-Token": token})
	rec := httptest.NewRecorder()
	handler.GetMine(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 with no submissions, got %d", rec.Code)
	}
}

func TestGetMine_RequiresToken(t *testing.T) {
	handler, _, _ := newJudgmentHandler(t)

	req := testutil.MakeRequest("GET", "/submissions/mine", nil, nil)
	rec := httptest.NewRecorder()
	handler.GetMine(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without token, got %d", rec.Code)
	}
}

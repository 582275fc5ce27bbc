// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package testutil provides shared helpers for handler and router tests:
// an in-memory database with the full schema, canned scenario data, and
// request builders.
package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/aita-judge/auth"
	"github.com/danielhkuo/aita-judge/cliparse"
	"github.com/danielhkuo/aita-judge/dataset"
	"github.com/danielhkuo/aita-judge/db"
	"github.com/danielhkuo/aita-judge/judgment"
	"github.com/danielhkuo/aita-judge/models"
	"github.com/danielhkuo/aita-judge/surveyconf"
)

// SetupTestDB creates a fresh in-memory database with the full schema.
// Closed automatically when the test finishes.
func SetupTestDB(t *testing.T) *db.DB {
	t.Helper()

	raw, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// One connection keeps every statement on the same in-memory database
	raw.SetMaxOpenConns(1)

	conn := db.Wrap(raw, db.TypeSQLite)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3319,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		AdminKeySalt: "test-admin-salt",
		FeedURL:      "https://example.com/feed.json",
	}
}

// GetTestSurvey loads the embedded survey config, failing the test on error.
func GetTestSurvey(t *testing.T) surveyconf.Config {
	t.Helper()

	cfg, err := surveyconf.Load("")
	if err != nil {
		t.Fatalf("Failed to load embedded survey config: %v", err)
	}
	return cfg
}

// TestScenarios returns a small normalized collection with clear-cut
// reference verdicts, for exercising submission and report paths.
func TestScenarios() []models.Scenario {
	return []models.Scenario{
		scenario("post-1", "YTA", map[judgment.Category]int{
			judgment.YTA: 70, judgment.NTA: 10, judgment.ESH: 10, judgment.NAH: 5, judgment.INFO: 5,
		}),
		scenario("post-2", "NTA", map[judgment.Category]int{
			judgment.YTA: 10, judgment.NTA: 75, judgment.ESH: 5, judgment.NAH: 5, judgment.INFO: 5,
		}),
		scenario("post-3", "NTA", map[judgment.Category]int{
			judgment.YTA: 15, judgment.NTA: 60, judgment.ESH: 10, judgment.NAH: 10, judgment.INFO: 5,
		}),
		scenario("post-4", "ESH", map[judgment.Category]int{
			judgment.YTA: 20, judgment.NTA: 15, judgment.ESH: 50, judgment.NAH: 10, judgment.INFO: 5,
		}),
	}
}

func scenario(id, verdict string, counts map[judgment.Category]int) models.Scenario {
	total := 0
	for _, n := range counts {
		total += n
	}
	return models.Scenario{
		ID:          id,
		Title:       "Test scenario " + id,
		URL:         "https://example.com/" + id,
		BodySummary: "A test scenario.",
		Verdict:     verdict,
		Counts:      counts,
		TotalJudged: total,
		Percentages: judgment.Percentages(counts, total, judgment.FiveWay),
		FetchedUTC:  "2025-01-01 00:00 UTC",
	}
}

// LoadTestDataset creates a store preloaded with the given scenarios.
func LoadTestDataset(scenarios []models.Scenario) *dataset.Store {
	store := dataset.NewStore(0)
	store.Replace(scenarios, models.SourceFeed)
	return store
}

// CreateTestVisitor inserts a claimed visitor row and returns its token.
func CreateTestVisitor(t *testing.T, conn *db.DB) string {
	t.Helper()

	token := auth.GenerateVisitorToken()
	_, err := conn.Exec(`
		INSERT INTO visitor (token, created_at, ip_hash, user_agent)
		VALUES (?, ?, ?, ?)
	`, token, time.Now(), "testhash", "testutil")
	if err != nil {
		t.Fatalf("Failed to create test visitor: %v", err)
	}

	return token
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

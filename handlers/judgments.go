// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/aita-judge/auth"
	"github.com/danielhkuo/aita-judge/cliparse"
	"github.com/danielhkuo/aita-judge/dataset"
	"github.com/danielhkuo/aita-judge/db"
	"github.com/danielhkuo/aita-judge/judgment"
	"github.com/danielhkuo/aita-judge/middleware"
	"github.com/danielhkuo/aita-judge/models"
	"github.com/danielhkuo/aita-judge/session"
	"github.com/danielhkuo/aita-judge/sink"
	"github.com/danielhkuo/aita-judge/surveyconf"
)

type JudgmentHandler struct {
	db     *db.DB
	cfg    cliparse.Config
	store  *dataset.Store
	survey surveyconf.Config
	sink   *sink.Submitter
}

func NewJudgmentHandler(conn *db.DB, cfg cliparse.Config, store *dataset.Store, survey surveyconf.Config, submitter *sink.Submitter) *JudgmentHandler {
	return &JudgmentHandler{db: conn, cfg: cfg, store: store, survey: survey, sink: submitter}
}

// Submit handles POST /judgments
// Validates the visitor's choices against the current dataset, computes the
// comparison report, and persists the submission. One submission is accepted
// per visitor per dataset version; repeats get 409.
func (h *JudgmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	visitorToken := r.Header.Get("X-Visitor-Token")
	if visitorToken == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Visitor-Token header required")
		return
	}

	// Verify the token was claimed
	var exists bool
	err := h.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM visitor WHERE token = ?)
	`, visitorToken).Scan(&exists)

	if err != nil {
		slog.Error("failed to verify visitor token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unknown visitor token")
		return
	}

	// Parse request
	var req models.SubmitJudgmentsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.Choices) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "choices cannot be empty")
		return
	}

	snap := h.store.Snapshot()
	if snap.Empty() {
		middleware.ErrorResponse(w, http.StatusConflict, "No scenarios loaded")
		return
	}

	// Validate every choice against the snapshot and the category scale
	set := h.survey.CategorySet()
	choices := make(session.Choices, len(req.Choices))
	for scenarioID, raw := range req.Choices {
		if _, ok := snap.Find(scenarioID); !ok {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown scenario_id: "+scenarioID)
			return
		}
		choice := judgment.Category(raw)
		if !set.Contains(choice) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid category for "+scenarioID+": "+raw)
			return
		}
		choices[scenarioID] = choice
	}

	agg, err := session.Compute(snap.Scenarios, choices, set)
	if err != nil {
		if errors.Is(err, session.ErrNoJudgments) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "No scenarios were judged")
			return
		}
		slog.Error("failed to compute session aggregate", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to compute report")
		return
	}

	report := session.BuildReport(agg, len(snap.Scenarios), set, session.ReportConfig{
		Tolerance:          h.survey.Tolerance,
		SimilarBandPercent: h.survey.SimilarBandPercent,
		HighAlignment:      h.survey.HighAlignmentPercent,
		LowAlignment:       h.survey.LowAlignmentPercent,
	})

	reportJSON, err := json.Marshal(report)
	if err != nil {
		slog.Error("failed to marshal report", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to compute report")
		return
	}

	submissionID, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate submission ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save submission")
		return
	}

	clientIP := middleware.GetClientIP(r)
	ipHash := auth.HashIP(clientIP, h.cfg.AdminKeySalt)
	userAgent := r.UserAgent()
	submittedAt := time.Now()

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO submission (
			id, visitor_token, dataset_version,
			answered_count, agreement_count,
			yta_count, nta_count, esh_count, nah_count, info_count,
			avg_alignment, harsh_count, soft_count, other_count,
			report_json, submitted_at, ip_hash, user_agent
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, submissionID, visitorToken, snap.Version,
		agg.AnsweredCount, agg.AgreementCount,
		agg.UserCounts[judgment.YTA], agg.UserCounts[judgment.NTA],
		agg.UserCounts[judgment.ESH], agg.UserCounts[judgment.NAH],
		agg.UserCounts[judgment.INFO],
		report.Alignment.AveragePercent, agg.Harsh, agg.Soft, agg.Other(),
		string(reportJSON), submittedAt, ipHash, userAgent)

	if err != nil {
		if db.IsUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, "Already submitted for this dataset")
			return
		}
		slog.Error("failed to insert submission", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save submission")
		return
	}

	for _, item := range agg.Items {
		_, err = tx.Exec(`
			INSERT INTO response (submission_id, scenario_id, choice, reference_verdict, agreed, align_percent)
			VALUES (?, ?, ?, ?, ?, ?)
		`, submissionID, item.ScenarioID, string(item.Choice), item.Verdict, item.Agreed, item.AlignPercent)

		if err != nil {
			slog.Error("failed to insert response", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save submission")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save submission")
		return
	}

	slog.Info("judgments submitted",
		"submission_id", submissionID,
		"dataset_version", snap.Version,
		"answered", agg.AnsweredCount,
	)

	// Forward to the sink after the report is already durable. The batch
	// runs in its own goroutine and its outcome never reaches the client.
	if h.sink.Enabled() {
		go h.sink.SubmitBatch(buildSinkRecords(agg, visitorToken, submittedAt))
	}

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitJudgmentsResponse{
		SubmissionID:   submissionID,
		DatasetVersion: snap.Version,
		Report:         report,
	})
}

// GetMine handles GET /submissions/mine
// Returns the visitor's most recent submission with its stored report.
func (h *JudgmentHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	visitorToken := r.Header.Get("X-Visitor-Token")
	if visitorToken == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Visitor-Token header required")
		return
	}

	var (
		submissionID   string
		datasetVersion int64
		reportJSON     string
		submittedAt    time.Time
	)
	err := h.db.QueryRow(`
		SELECT id, dataset_version, report_json, submitted_at
		FROM submission
		WHERE visitor_token = ?
		ORDER BY submitted_at DESC
		LIMIT 1
	`, visitorToken).Scan(&submissionID, &datasetVersion, &reportJSON, &submittedAt)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "No submission found")
		return
	}
	if err != nil {
		slog.Error("failed to query submission", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var report models.Report
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		slog.Error("failed to unmarshal stored report", "error", err, "submission_id", submissionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Corrupt stored report")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SubmissionResponse{
		SubmissionID:   submissionID,
		DatasetVersion: datasetVersion,
		SubmittedAt:    submittedAt,
		Report:         report,
	})
}

func buildSinkRecords(agg session.Aggregate, visitorToken string, submittedAt time.Time) []sink.Record {
	records := make([]sink.Record, 0, len(agg.Items))
	for _, item := range agg.Items {
		records = append(records, sink.Record{
			PostID:           item.ScenarioID,
			UserJudgment:     item.Choice,
			ReferenceVerdict: item.Verdict,
			Agreed:           item.Agreed,
			AlignPercent:     item.AlignPercent,
			Timestamp:        submittedAt,
			UserCounts:       agg.UserCounts,
			AnsweredCount:    agg.AnsweredCount,
			VisitorToken:     visitorToken,
		})
	}
	return records
}

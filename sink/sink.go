// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package sink forwards per-item submission records to an external
// form-collection endpoint. Forwarding is fire-and-forget: responses are
// never parsed, failures are logged and never retried, and one failure
// never blocks the rest of the batch or the visitor's report.
package sink

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/aita-judge/judgment"
	"github.com/danielhkuo/aita-judge/surveyconf"
)

const defaultTimeout = 30 * time.Second

// Record is one answered scenario plus the session aggregates attached to
// every record of the batch.
type Record struct {
	PostID           string
	UserJudgment     judgment.Category
	ReferenceVerdict string
	Agreed           bool
	AlignPercent     float64
	Timestamp        time.Time

	UserCounts    map[judgment.Category]int
	AnsweredCount int
	VisitorToken  string
}

// Submitter posts records to the configured form endpoint.
type Submitter struct {
	client *http.Client
	cfg    surveyconf.SinkConfig
}

func New(client *http.Client, cfg surveyconf.SinkConfig) *Submitter {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Submitter{client: client, cfg: cfg}
}

// Enabled reports whether a form endpoint is configured. A disabled sink
// silently skips every batch.
func (s *Submitter) Enabled() bool {
	return s.cfg.ActionURL != "" && len(s.cfg.Entries) > 0
}

// SubmitBatch posts the records sequentially with a fixed pause between
// them, a courtesy to the receiving endpoint rather than a correctness
// requirement. Once started the batch always runs to completion; there is
// no cancellation. Intended to be called from its own goroutine after the
// report has already been computed and returned.
func (s *Submitter) SubmitBatch(records []Record) {
	if !s.Enabled() {
		slog.Info("submission sink not configured, skipping batch", "records", len(records))
		return
	}

	delay := time.Duration(s.cfg.DelayMS) * time.Millisecond
	for i, rec := range records {
		if err := s.submitOne(rec); err != nil {
			slog.Error("sink submission failed", "post_id", rec.PostID, "error", err)
		}
		if i < len(records)-1 {
			time.Sleep(delay)
		}
	}
	slog.Info("sink batch finished", "records", len(records))
}

func (s *Submitter) submitOne(rec Record) error {
	form := s.encode(rec)

	resp, err := s.client.Post(s.cfg.ActionURL, "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("posting to sink: %w", err)
	}
	// Fire and forget: the body is never parsed.
	resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sink returned status %d", resp.StatusCode)
	}
	return nil
}

// encode maps record fields onto the configured form entry IDs. A field
// with no configured entry is simply omitted.
func (s *Submitter) encode(rec Record) url.Values {
	form := url.Values{}
	add := func(field, value string) {
		if entry, ok := s.cfg.Entries[field]; ok && entry != "" {
			form.Set(entry, value)
		}
	}

	agreed := "No"
	if rec.Agreed {
		agreed = "Yes"
	}

	add("post_id", rec.PostID)
	add("user_judgment", string(rec.UserJudgment))
	add("reference_verdict", rec.ReferenceVerdict)
	add("agreed", agreed)
	add("pop_align_percent", strconv.FormatFloat(rec.AlignPercent, 'f', 1, 64))
	add("timestamp", rec.Timestamp.UTC().Format(time.RFC3339))

	add("user_yta_count", strconv.Itoa(rec.UserCounts[judgment.YTA]))
	add("user_nta_count", strconv.Itoa(rec.UserCounts[judgment.NTA]))
	add("user_esh_count", strconv.Itoa(rec.UserCounts[judgment.ESH]))
	add("user_nah_count", strconv.Itoa(rec.UserCounts[judgment.NAH]))
	add("user_info_count", strconv.Itoa(rec.UserCounts[judgment.INFO]))

	add("answered_count", strconv.Itoa(rec.AnsweredCount))
	add("visitor_token", rec.VisitorToken)

	return form
}

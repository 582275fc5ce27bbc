// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package feed

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/aita-judge/judgment"
	"github.com/danielhkuo/aita-judge/models"
)

// Placeholder values for missing record fields.
const (
	MissingTitle = "(Missing Title)"
	MissingURL   = "#"
)

// Normalize turns raw feed records into Scenarios. Records that are not
// JSON objects are dropped with a diagnostic; one malformed item never
// aborts the batch. Missing fields get documented placeholders, a missing
// verdict defaults to Mixed, and reference percentages are computed from
// the record's explicit total_judged field, not a recomputed sum.
//
// Normalizing an already-normalized record is a no-op: all defaults are
// fixed points and percentages recompute to the same values.
func Normalize(raws []json.RawMessage, set judgment.Set) []models.Scenario {
	scenarios := make([]models.Scenario, 0, len(raws))

	for i, raw := range raws {
		var post RawPost
		if err := json.Unmarshal(raw, &post); err != nil || isJSONNull(raw) {
			slog.Warn("skipping invalid feed record", "index", i, "error", err)
			continue
		}
		scenarios = append(scenarios, normalizeOne(post, i, set))
	}

	return scenarios
}

func normalizeOne(post RawPost, index int, set judgment.Set) models.Scenario {
	id := post.ID
	if id == "" {
		// Position-based fallback keeps synthesized IDs unique in the batch.
		id = fmt.Sprintf("missing-id-%d", index)
	}

	title := post.Title
	if title == "" {
		title = MissingTitle
	}

	postURL := post.URL
	if postURL == "" {
		postURL = MissingURL
	}

	verdict := judgment.VerdictMixed
	if post.RedditVerdict != nil && *post.RedditVerdict != "" {
		verdict = *post.RedditVerdict
	}

	counts := make(map[judgment.Category]int, len(set.Categories))
	for _, cat := range set.Categories {
		counts[cat] = post.RedditJudgments[string(cat)]
	}

	return models.Scenario{
		ID:          id,
		Title:       title,
		URL:         postURL,
		BodySummary: post.BodySummary,
		Verdict:     verdict,
		Counts:      counts,
		TotalJudged: post.TotalJudged,
		Percentages: judgment.Percentages(counts, post.TotalJudged, set),
		FetchedUTC:  post.FetchedUTC,
	}
}

// isJSONNull catches the one malformed shape json.Unmarshal accepts
// silently into a struct.
func isJSONNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}

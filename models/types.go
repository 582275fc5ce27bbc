// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"time"

	"github.com/danielhkuo/aita-judge/judgment"
)

// Dataset source constants
const (
	SourceFeed  = "feed"
	SourceStudy = "study"
)

// Domain types

// Scenario is one normalized judgable case. Scenarios are rebuilt fresh on
// every dataset load and never mutated afterwards.
type Scenario struct {
	ID          string                        `json:"id"`
	Title       string                        `json:"title"`
	URL         string                        `json:"url"`
	BodySummary string                        `json:"body_summary"`
	Verdict     string                        `json:"reference_verdict"`
	Counts      map[judgment.Category]int     `json:"reference_judgments"`
	TotalJudged int                           `json:"total_judged"`
	Percentages map[judgment.Category]float64 `json:"reference_percentages"`
	FetchedUTC  string                        `json:"fetched_utc,omitempty"`
}

// Request types

// SubmitJudgmentsRequest carries the visitor's choices, scenario ID ->
// category. Scenarios absent from the map are unanswered; they are never
// defaulted to a category.
type SubmitJudgmentsRequest struct {
	Choices map[string]string `json:"choices"`
}

type StudyCompareRequest struct {
	Answers map[string]string `json:"answers"`
}

// Response types

type ClaimVisitorResponse struct {
	VisitorToken string `json:"visitor_token"`
}

type ScenariosResponse struct {
	DatasetVersion int64      `json:"dataset_version"`
	FetchedUTC     string     `json:"fetched_utc,omitempty"`
	Scenarios      []Scenario `json:"scenarios"`
	Categories     []string   `json:"categories"`
	Message        string     `json:"message,omitempty"`
}

type SubmitJudgmentsResponse struct {
	SubmissionID   string `json:"submission_id"`
	DatasetVersion int64  `json:"dataset_version"`
	Report         Report `json:"report"`
}

type SubmissionResponse struct {
	SubmissionID   string    `json:"submission_id"`
	DatasetVersion int64     `json:"dataset_version"`
	SubmittedAt    time.Time `json:"submitted_at"`
	Report         Report    `json:"report"`
}

// Report types

// Report is the session comparison shown after a submission.
type Report struct {
	AnsweredCount  int            `json:"answered_count"`
	TotalScenarios int            `json:"total_scenarios"`
	Agreement      Agreement      `json:"agreement"`
	Alignment      Alignment      `json:"popularity_alignment"`
	Profile        []ProfileEntry `json:"judgment_profile,omitempty"`
	Disagreements  Disagreements  `json:"disagreement_style"`
	Tendency       Tendency       `json:"judgmental_tendency"`
}

type Agreement struct {
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type Alignment struct {
	AveragePercent float64 `json:"average_percent"`
	Qualifier      string  `json:"qualifier"`
}

type ProfileEntry struct {
	Category         string  `json:"category"`
	UserPercent      float64 `json:"user_percent"`
	ReferencePercent float64 `json:"reference_percent"`
	Usage            string  `json:"usage"`
}

type Disagreements struct {
	Count        int     `json:"count"`
	Harsh        int     `json:"harsh"`
	Soft         int     `json:"soft"`
	Other        int     `json:"other"`
	HarshPercent float64 `json:"harsh_percent"`
	SoftPercent  float64 `json:"soft_percent"`
	OtherPercent float64 `json:"other_percent"`
}

// Tendency ratios are formatted strings ("3.00", "Inf") because the
// underlying values may be infinite, which JSON numbers cannot carry.
type Tendency struct {
	Available      bool   `json:"available"`
	UserRatio      string `json:"user_ratio,omitempty"`
	ReferenceRatio string `json:"reference_ratio,omitempty"`
	Relative       string `json:"relative,omitempty"`
}

// Study variant types

type StudyQuestion struct {
	Name        string   `json:"name"`
	Prompt      string   `json:"prompt,omitempty"`
	Categories  []string `json:"categories"`
	Populations []string `json:"populations"`
}

type StudyQuestionsResponse struct {
	Questions []StudyQuestion `json:"questions"`
}

type PopulationShare struct {
	Population string  `json:"population"`
	Percent    float64 `json:"percent"`
}

type StudyComparison struct {
	Question string            `json:"question"`
	Choice   string            `json:"choice"`
	Shares   []PopulationShare `json:"shares"`
}

type StudyCompareResponse struct {
	AnsweredCount int               `json:"answered_count"`
	Comparisons   []StudyComparison `json:"comparisons"`
}

// Admin types

type ReloadResponse struct {
	DatasetVersion int64  `json:"dataset_version"`
	ScenarioCount  int    `json:"scenario_count"`
	Source         string `json:"source"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"

	"github.com/danielhkuo/aita-judge/judgment"
	"github.com/danielhkuo/aita-judge/models"
)

// ErrNoJudgments is the validation gate: a submission with zero answered
// scenarios is rejected before any aggregation happens.
var ErrNoJudgments = errors.New("no scenarios were judged")

// Choices maps scenario ID -> the visitor's category. A scenario absent
// from the map is unanswered and contributes to nothing.
type Choices map[string]judgment.Category

// ItemResult is the per-scenario outcome of one submission, in dataset
// order. It is what gets persisted and forwarded to the sink.
type ItemResult struct {
	ScenarioID   string
	Choice       judgment.Category
	Verdict      string
	Agreed       bool
	AlignPercent float64
}

// Aggregate is the session-level fold over the answered scenarios.
type Aggregate struct {
	AnsweredCount  int
	AgreementCount int

	// Per-category counts of the visitor's own choices.
	UserCounts map[judgment.Category]int

	// Reference tallies restricted to exactly the answered scenarios.
	ReferenceTotals      map[judgment.Category]int
	ReferenceTotalJudged int

	// Majority-verdict counts over the answered scenarios, feeding the
	// tendency ratio.
	ReferenceVerdictYTA int
	ReferenceVerdictNTA int

	// Sum of the reference percentage matching the visitor's choice.
	AlignmentSum float64

	Harsh int
	Soft  int

	Items []ItemResult
}

// Compute folds the visitor's choices over the scenario collection. It is
// deterministic and side-effect free; the set parameter decides which
// categories exist and which count as harsh or soft.
func Compute(scenarios []models.Scenario, choices Choices, set judgment.Set) (Aggregate, error) {
	agg := Aggregate{
		UserCounts:      make(map[judgment.Category]int, len(set.Categories)),
		ReferenceTotals: make(map[judgment.Category]int, len(set.Categories)),
	}

	for _, sc := range scenarios {
		choice, ok := choices[sc.ID]
		if !ok {
			continue
		}

		agg.AnsweredCount++
		agg.UserCounts[choice]++

		agreed := string(choice) == sc.Verdict
		if agreed {
			agg.AgreementCount++
		}

		align := sc.Percentages[choice]
		agg.AlignmentSum += align

		for _, cat := range set.Categories {
			agg.ReferenceTotals[cat] += sc.Counts[cat]
		}
		agg.ReferenceTotalJudged += sc.TotalJudged

		switch sc.Verdict {
		case string(judgment.YTA):
			agg.ReferenceVerdictYTA++
		case string(judgment.NTA):
			agg.ReferenceVerdictNTA++
		}

		if !agreed {
			switch judgment.ClassifyMismatch(choice, sc.Verdict, set) {
			case judgment.MismatchHarsh:
				agg.Harsh++
			case judgment.MismatchSoft:
				agg.Soft++
			}
		}

		agg.Items = append(agg.Items, ItemResult{
			ScenarioID:   sc.ID,
			Choice:       choice,
			Verdict:      sc.Verdict,
			Agreed:       agreed,
			AlignPercent: align,
		})
	}

	if agg.AnsweredCount == 0 {
		return Aggregate{}, ErrNoJudgments
	}
	return agg, nil
}

// Disagreements is the number of answered scenarios where the choice did
// not match the reference verdict.
func (a Aggregate) Disagreements() int {
	return a.AnsweredCount - a.AgreementCount
}

// Other is the disagreement remainder: neither harsh nor soft. Computed
// as a remainder so harsh + soft + other always equals Disagreements.
func (a Aggregate) Other() int {
	return a.Disagreements() - a.Harsh - a.Soft
}

// UserRatio is the visitor's YTA/NTA tendency ratio.
func (a Aggregate) UserRatio() float64 {
	return judgment.Ratio(a.UserCounts[judgment.YTA], a.UserCounts[judgment.NTA])
}

// ReferenceRatio is the tendency ratio of the reference majority verdicts
// over the answered scenarios.
func (a Aggregate) ReferenceRatio() float64 {
	return judgment.Ratio(a.ReferenceVerdictYTA, a.ReferenceVerdictNTA)
}

// TendencyAvailable reports whether the visitor cast enough YTA/NTA
// judgments for the ratio comparison to mean anything.
func (a Aggregate) TendencyAvailable() bool {
	return a.UserCounts[judgment.YTA] > 0 || a.UserCounts[judgment.NTA] > 0
}

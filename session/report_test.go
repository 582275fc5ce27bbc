// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"testing"

	"github.com/danielhkuo/aita-judge/judgment"
	"github.com/danielhkuo/aita-judge/models"
)

func testReportConfig() ReportConfig {
	return ReportConfig{
		Tolerance:          0.20,
		SimilarBandPercent: 5.0,
		HighAlignment:      60.0,
		LowAlignment:       30.0,
	}
}

func TestBuildReport(t *testing.T) {
	choices := Choices{
		"p1": judgment.NTA,
		"p2": judgment.NTA,
		"p3": judgment.YTA,
	}
	agg, err := Compute(testScenarios(), choices, judgment.FiveWay)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	report := BuildReport(agg, 4, judgment.FiveWay, testReportConfig())

	if report.AnsweredCount != 3 || report.TotalScenarios != 4 {
		t.Errorf("wrong counts: %d/%d", report.AnsweredCount, report.TotalScenarios)
	}
	if report.Agreement.Count != 1 || report.Agreement.Percent != 33.3 {
		t.Errorf("wrong agreement: %+v", report.Agreement)
	}

	// 145 / 3 = 48.333... -> 48.3, between the thresholds.
	if report.Alignment.AveragePercent != 48.3 {
		t.Errorf("expected average alignment 48.3, got %v", report.Alignment.AveragePercent)
	}
	if report.Alignment.Qualifier != QualifierModerate {
		t.Errorf("expected moderate qualifier, got %q", report.Alignment.Qualifier)
	}

	if report.Disagreements.Count != 2 {
		t.Errorf("expected 2 disagreements, got %d", report.Disagreements.Count)
	}
	if report.Disagreements.Soft != 1 || report.Disagreements.Other != 1 {
		t.Errorf("wrong disagreement split: %+v", report.Disagreements)
	}
	if report.Disagreements.SoftPercent != 50.0 || report.Disagreements.OtherPercent != 50.0 {
		t.Errorf("wrong disagreement rates: %+v", report.Disagreements)
	}

	if len(report.Profile) != 5 {
		t.Errorf("expected a profile entry per category, got %d", len(report.Profile))
	}
}

func TestBuildReportQualifiers(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		verdict string
		choice  judgment.Category
		want    string
	}{
		{"high alignment", 90, "NTA", judgment.NTA, QualifierPopular},
		{"low alignment", 10, "NTA", judgment.NTA, QualifierMinority},
		{"moderate alignment", 45, "NTA", judgment.NTA, QualifierModerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts := map[judgment.Category]int{tt.choice: int(tt.percent)}
			scenarios := []models.Scenario{scenario("q", tt.verdict, counts, 100)}
			agg, err := Compute(scenarios, Choices{"q": tt.choice}, judgment.FiveWay)
			if err != nil {
				t.Fatalf("Compute failed: %v", err)
			}
			report := BuildReport(agg, 1, judgment.FiveWay, testReportConfig())
			if report.Alignment.Qualifier != tt.want {
				t.Errorf("alignment %v: expected %q, got %q", tt.percent, tt.want, report.Alignment.Qualifier)
			}
		})
	}
}

func TestBuildReportTendency(t *testing.T) {
	scenarios := []models.Scenario{
		scenario("a", "YTA", nil, 0),
		scenario("b", "NTA", nil, 0),
	}
	agg, err := Compute(scenarios, Choices{"a": judgment.YTA, "b": judgment.YTA}, judgment.FiveWay)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	report := BuildReport(agg, 2, judgment.FiveWay, testReportConfig())
	if !report.Tendency.Available {
		t.Fatal("tendency should be available")
	}
	// User ratio 2/0 = Inf; reference 1/1 = 1.00.
	if report.Tendency.UserRatio != "Inf" {
		t.Errorf("expected Inf user ratio, got %q", report.Tendency.UserRatio)
	}
	if report.Tendency.ReferenceRatio != "1.00" {
		t.Errorf("expected reference ratio 1.00, got %q", report.Tendency.ReferenceRatio)
	}
	if report.Tendency.Relative != string(judgment.More) {
		t.Errorf("expected more, got %q", report.Tendency.Relative)
	}
}

func TestBuildReportNoTendencyWithoutYTAorNTA(t *testing.T) {
	scenarios := []models.Scenario{scenario("a", "Mixed", nil, 0)}
	agg, err := Compute(scenarios, Choices{"a": judgment.ESH}, judgment.FiveWay)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	report := BuildReport(agg, 1, judgment.FiveWay, testReportConfig())
	if report.Tendency.Available {
		t.Error("tendency should be unavailable")
	}
	if report.Tendency.UserRatio != "" {
		t.Errorf("expected empty ratio, got %q", report.Tendency.UserRatio)
	}
}

func TestBuildReportNoProfileWithoutReferenceJudgments(t *testing.T) {
	scenarios := []models.Scenario{scenario("a", "Mixed", nil, 0)}
	agg, err := Compute(scenarios, Choices{"a": judgment.NTA}, judgment.FiveWay)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	report := BuildReport(agg, 1, judgment.FiveWay, testReportConfig())
	if report.Profile != nil {
		t.Error("profile should be omitted when no reference judgments exist")
	}
}

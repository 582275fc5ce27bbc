// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"math"
	"strconv"

	"github.com/danielhkuo/aita-judge/judgment"
	"github.com/danielhkuo/aita-judge/models"
)

// Alignment qualifier strings.
const (
	QualifierPopular  = "You generally align with popular opinions."
	QualifierMinority = "You often hold minority opinions relative to the reference population."
	QualifierModerate = "Your alignment with popular opinions is moderate."
)

// Profile usage labels.
const (
	UsageMore    = "more often than"
	UsageLess    = "less often than"
	UsageSimilar = "similar to"
)

// ReportConfig carries the survey's classifier policy knobs.
type ReportConfig struct {
	Tolerance          float64
	SimilarBandPercent float64
	HighAlignment      float64
	LowAlignment       float64
}

// BuildReport formats an aggregate into the comparison report. Pure
// formatting over Compute's output; percentages shown to one decimal.
func BuildReport(agg Aggregate, totalScenarios int, set judgment.Set, cfg ReportConfig) models.Report {
	answered := float64(agg.AnsweredCount)

	report := models.Report{
		AnsweredCount:  agg.AnsweredCount,
		TotalScenarios: totalScenarios,
		Agreement: models.Agreement{
			Count:   agg.AgreementCount,
			Percent: judgment.Round1(float64(agg.AgreementCount) / answered * 100),
		},
	}

	avgAlign := agg.AlignmentSum / answered
	report.Alignment = models.Alignment{
		AveragePercent: judgment.Round1(avgAlign),
		Qualifier:      alignmentQualifier(avgAlign, cfg),
	}

	if agg.ReferenceTotalJudged > 0 {
		report.Profile = buildProfile(agg, set, cfg.SimilarBandPercent)
	}

	report.Disagreements = buildDisagreements(agg)

	if agg.TendencyAvailable() {
		userRatio := agg.UserRatio()
		refRatio := agg.ReferenceRatio()
		report.Tendency = models.Tendency{
			Available:      true,
			UserRatio:      formatRatio(userRatio),
			ReferenceRatio: formatRatio(refRatio),
			Relative:       string(judgment.RelativeJudgment(userRatio, refRatio, cfg.Tolerance)),
		}
	}

	return report
}

func alignmentQualifier(avg float64, cfg ReportConfig) string {
	switch {
	case avg > cfg.HighAlignment:
		return QualifierPopular
	case avg < cfg.LowAlignment:
		return QualifierMinority
	default:
		return QualifierModerate
	}
}

func buildProfile(agg Aggregate, set judgment.Set, band float64) []models.ProfileEntry {
	entries := make([]models.ProfileEntry, 0, len(set.Categories))
	for _, cat := range set.Categories {
		userPct := float64(agg.UserCounts[cat]) / float64(agg.AnsweredCount) * 100
		refPct := float64(agg.ReferenceTotals[cat]) / float64(agg.ReferenceTotalJudged) * 100

		usage := UsageSimilar
		if diff := userPct - refPct; math.Abs(diff) >= band {
			if diff > 0 {
				usage = UsageMore
			} else {
				usage = UsageLess
			}
		}

		entries = append(entries, models.ProfileEntry{
			Category:         string(cat),
			UserPercent:      judgment.Round1(userPct),
			ReferencePercent: judgment.Round1(refPct),
			Usage:            usage,
		})
	}
	return entries
}

func buildDisagreements(agg Aggregate) models.Disagreements {
	d := models.Disagreements{
		Count: agg.Disagreements(),
		Harsh: agg.Harsh,
		Soft:  agg.Soft,
		Other: agg.Other(),
	}
	if d.Count > 0 {
		total := float64(d.Count)
		d.HarshPercent = judgment.Round1(float64(d.Harsh) / total * 100)
		d.SoftPercent = judgment.Round1(float64(d.Soft) / total * 100)
		d.OtherPercent = judgment.Round1(float64(d.Other) / total * 100)
	}
	return d
}

func formatRatio(r float64) string {
	if math.IsInf(r, 1) {
		return "Inf"
	}
	return strconv.FormatFloat(r, 'f', 2, 64)
}

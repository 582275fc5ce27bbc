// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package judgment

import "math"

// Relative is the three-way outcome of comparing two tendency ratios.
type Relative string

const (
	More      Relative = "more"
	Less      Relative = "less"
	Similarly Relative = "similarly"
)

// Mismatch categorizes a disagreement between a user choice and a
// reference verdict.
type Mismatch string

const (
	MismatchHarsh Mismatch = "harsh"
	MismatchSoft  Mismatch = "soft"
	MismatchOther Mismatch = "other"
)

// Percentages converts raw category counts into percentage shares of
// total, rounded to one decimal place. A zero total yields exactly 0 for
// every category so downstream arithmetic never meets NaN. The total is
// taken as given, not recomputed: feed records may count judgments
// outside the enumerated set.
func Percentages(counts map[Category]int, total int, set Set) map[Category]float64 {
	percentages := make(map[Category]float64, len(set.Categories))
	for _, cat := range set.Categories {
		if total <= 0 {
			percentages[cat] = 0
			continue
		}
		percentages[cat] = Round1(float64(counts[cat]) / float64(total) * 100)
	}
	return percentages
}

// Ratio computes the YTA/NTA tendency ratio. With no NTA votes the ratio
// is 0 when there are also no YTA votes ("no judgmental lean") and +Inf
// otherwise, never NaN.
func Ratio(yta, nta int) float64 {
	if nta == 0 {
		if yta > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return float64(yta) / float64(nta)
}

// RelativeJudgment compares a user's tendency ratio against a reference
// group's within a tolerance band. Both ratios come from Ratio, so the
// domain is the non-negative reals plus +Inf; tolerance is a fraction in
// (0, 1).
func RelativeJudgment(userRatio, groupRatio, tolerance float64) Relative {
	if math.IsInf(userRatio, 1) {
		if math.IsInf(groupRatio, 1) {
			return Similarly
		}
		return More
	}
	if math.IsInf(groupRatio, 1) {
		return Less
	}
	if groupRatio == 0 {
		if userRatio > 0 {
			return More
		}
		return Similarly
	}
	if userRatio > groupRatio*(1+tolerance) {
		return More
	}
	if userRatio < groupRatio*(1-tolerance) {
		return Less
	}
	return Similarly
}

// ClassifyMismatch categorizes a disagreement. Callers only invoke it when
// choice and verdict actually differ; harsh means the user picked a harsh
// category while the reference verdict was soft, soft the reverse, and
// everything else (INFO, Mixed verdicts, YTA vs ESH, NTA vs NAH) is other.
func ClassifyMismatch(choice Category, verdict string, set Set) Mismatch {
	verdictCat := Category(verdict)
	switch {
	case set.isHarsh(choice) && set.isSoft(verdictCat):
		return MismatchHarsh
	case set.isSoft(choice) && set.isHarsh(verdictCat):
		return MismatchSoft
	default:
		return MismatchOther
	}
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

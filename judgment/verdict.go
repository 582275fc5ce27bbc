// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package judgment

import "regexp"

// Acronym patterns, checked in precedence order. A comment mentioning
// several acronyms is counted for the first one in this list.
var commentPatterns = []struct {
	category Category
	re       *regexp.Regexp
}{
	{YTA, regexp.MustCompile(`(?i)\byta\b`)},
	{NTA, regexp.MustCompile(`(?i)\bnta\b`)},
	{ESH, regexp.MustCompile(`(?i)\besh\b`)},
	{NAH, regexp.MustCompile(`(?i)\bnah\b`)},
	{INFO, regexp.MustCompile(`(?i)\binfo\b`)},
}

// CategorizeComment scans a comment for an AITA judgment acronym and
// returns the matching category. The second result is false when the
// comment casts no recognizable judgment.
func CategorizeComment(text string) (Category, bool) {
	if text == "" {
		return "", false
	}
	for _, p := range commentPatterns {
		if p.re.MatchString(text) {
			return p.category, true
		}
	}
	return "", false
}

// Verdict candidates, in tie-breaking order. INFO never wins a verdict.
var verdictCandidates = []Category{YTA, NTA, ESH, NAH}

// MajorityVerdict derives the reference verdict for a scenario from its
// comment tallies. Fewer than 10 judged comments is too thin a sample,
// and a leading category below 40% of the total is too even a split; both
// produce a Mixed-style verdict instead of a category.
func MajorityVerdict(counts map[Category]int, total int) string {
	if total <= 0 {
		return VerdictNoJudgments
	}

	verdict := VerdictMixed
	highest := 0
	for _, cat := range verdictCandidates {
		if counts[cat] > highest {
			highest = counts[cat]
			verdict = string(cat)
		}
	}

	if total < 10 {
		return VerdictFewJudgments
	}
	if float64(highest)/float64(total) < 0.40 {
		return VerdictMixed
	}
	return verdict
}

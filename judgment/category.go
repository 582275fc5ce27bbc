// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package judgment

// Category is a single judgment label.
type Category string

const (
	YTA     Category = "YTA"
	NTA     Category = "NTA"
	ESH     Category = "ESH"
	NAH     Category = "NAH"
	INFO    Category = "INFO"
	Neither Category = "Neither"
)

// Reference verdict strings that are not categories. A scenario whose
// commenters split too evenly (or too thinly) carries one of these instead
// of a category, and can therefore never produce an exact agreement.
const (
	VerdictMixed        = "Mixed"
	VerdictFewJudgments = "Mixed / Few Judgments"
	VerdictNoJudgments  = "No Judgments Found"
)

// Set describes one category scale: the full list plus the harsh and soft
// subsets used by the mismatch classifier.
type Set struct {
	Categories []Category
	Harsh      []Category
	Soft       []Category
}

// FiveWay is the live-survey scale (Reddit's judgment acronyms).
var FiveWay = Set{
	Categories: []Category{YTA, NTA, ESH, NAH, INFO},
	Harsh:      []Category{YTA, ESH},
	Soft:       []Category{NTA, NAH},
}

// ThreeWay is the reduced scale used by the embedded study dataset.
var ThreeWay = Set{
	Categories: []Category{NTA, Neither, YTA},
	Harsh:      []Category{YTA},
	Soft:       []Category{NTA},
}

// Contains reports whether c is one of the set's categories.
func (s Set) Contains(c Category) bool {
	for _, cat := range s.Categories {
		if cat == c {
			return true
		}
	}
	return false
}

func (s Set) isHarsh(c Category) bool {
	for _, cat := range s.Harsh {
		if cat == c {
			return true
		}
	}
	return false
}

func (s Set) isSoft(c Category) bool {
	for _, cat := range s.Soft {
		if cat == c {
			return true
		}
	}
	return false
}

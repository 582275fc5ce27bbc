// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package judgment implements the pure comparison arithmetic of the survey:
category tallies, percentage shares, the YTA/NTA tendency ratio, the
relative-judgment classifier, and the mismatch classifier.

Everything in this package is a deterministic function of its inputs.
HTTP handling, storage, and the feed pipeline live elsewhere; they call
into this package and never the other way around.

# Category Sets

The live survey uses the five Reddit judgment acronyms (YTA, NTA, ESH,
NAH, INFO). The embedded study dataset uses a reduced three-way scale
(NTA, Neither, YTA). Both are expressed as a Set value carrying the full
category list plus its harsh and soft subsets, so the same arithmetic
serves either variant:

	agg := judgment.Percentages(counts, total, judgment.FiveWay)

# Edge Policy

Division edge cases are policy, not accidents: a zero total yields 0%
for every category, and a zero NTA count yields ratio 0 when YTA is also
zero or +Inf when it is not. Downstream code relies on never seeing NaN.
*/
package judgment

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session folds one visitor's judgments over the current scenario
collection and formats the resulting comparison report.

Compute is the aggregation core: it restricts every reference tally to
exactly the answered scenarios, counts exact-match agreements (no partial
credit), accumulates popularity alignment, and classifies disagreements.
BuildReport is pure formatting over that aggregate.

The submission lifecycle around these functions (collect request state,
validate, aggregate, persist, report) lives in the handlers package; the
one-accepted-submission-per-dataset-version guard is a database UNIQUE
constraint, not state held here.
*/
package session

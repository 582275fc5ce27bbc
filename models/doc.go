// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitJudgmentsRequest: choices (map of scenario ID -> category)
  - StudyCompareRequest: answers (map of question name -> category)

# Response Types

Types for JSON responses:

  - ClaimVisitorResponse: visitor_token
  - ScenariosResponse: dataset_version, scenarios, categories, message
  - SubmitJudgmentsResponse: submission_id, dataset_version, report
  - SubmissionResponse: stored submission with its report
  - StudyQuestionsResponse / StudyCompareResponse: embedded study variant
  - ReloadResponse: dataset_version, scenario_count, source
  - ErrorResponse: error, message

# Domain Types

  - Scenario: one normalized judgable case with reference tallies and
    pre-computed percentages
  - Report and its parts (Agreement, Alignment, ProfileEntry,
    Disagreements, Tendency): the session comparison

# Constants

Dataset sources:

	SourceFeed  = "feed"
	SourceStudy = "study"
*/
package models

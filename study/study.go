// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package study serves the embedded survey variant: a fixed table of
// scenarios judged on the reduced three-way scale by two reference
// populations. Unlike the live feed, population totals here are recomputed
// from the counts (the study tables carry no separate total).
package study

import (
	"errors"
	"fmt"
	"sort"

	"github.com/danielhkuo/aita-judge/judgment"
	"github.com/danielhkuo/aita-judge/models"
	"github.com/danielhkuo/aita-judge/surveyconf"
)

// ErrNoAnswers mirrors the live variant's validation gate.
var ErrNoAnswers = errors.New("no study questions were answered")

// Survey holds the embedded question table.
type Survey struct {
	questions []surveyconf.StudyQuestion
	set       judgment.Set
}

func New(questions []surveyconf.StudyQuestion) *Survey {
	return &Survey{questions: questions, set: judgment.ThreeWay}
}

// Questions lists the embedded questions with their category scale and
// available reference populations.
func (s *Survey) Questions() models.StudyQuestionsResponse {
	resp := models.StudyQuestionsResponse{Questions: make([]models.StudyQuestion, 0, len(s.questions))}
	for _, q := range s.questions {
		resp.Questions = append(resp.Questions, models.StudyQuestion{
			Name:        q.Name,
			Prompt:      q.Prompt,
			Categories:  categoryNames(s.set),
			Populations: populationNames(q),
		})
	}
	return resp
}

// Compare reports, for each answered question, the share of each
// reference population that made the same choice. Unanswered questions
// are skipped; answering none at all is a validation failure.
func (s *Survey) Compare(answers map[string]string) (models.StudyCompareResponse, error) {
	var resp models.StudyCompareResponse

	for _, q := range s.questions {
		answer, ok := answers[q.Name]
		if !ok || answer == "" {
			continue
		}
		choice := judgment.Category(answer)
		if !s.set.Contains(choice) {
			return models.StudyCompareResponse{}, fmt.Errorf("question %q: unknown category %q", q.Name, answer)
		}

		resp.AnsweredCount++
		comparison := models.StudyComparison{Question: q.Name, Choice: answer}

		for _, population := range populationNames(q) {
			counts := make(map[judgment.Category]int, len(s.set.Categories))
			total := 0
			for cat, n := range q.Populations[population] {
				counts[judgment.Category(cat)] = n
				total += n
			}
			percentages := judgment.Percentages(counts, total, s.set)
			comparison.Shares = append(comparison.Shares, models.PopulationShare{
				Population: population,
				Percent:    percentages[choice],
			})
		}

		resp.Comparisons = append(resp.Comparisons, comparison)
	}

	if resp.AnsweredCount == 0 {
		return models.StudyCompareResponse{}, ErrNoAnswers
	}
	return resp, nil
}

func categoryNames(set judgment.Set) []string {
	names := make([]string, len(set.Categories))
	for i, cat := range set.Categories {
		names[i] = string(cat)
	}
	return names
}

func populationNames(q surveyconf.StudyQuestion) []string {
	names := make([]string, 0, len(q.Populations))
	for name := range q.Populations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/danielhkuo/aita-judge/middleware"
	"github.com/danielhkuo/aita-judge/models"
	"github.com/danielhkuo/aita-judge/study"
)

type StudyHandler struct {
	survey *study.Survey
}

func NewStudyHandler(survey *study.Survey) *StudyHandler {
	return &StudyHandler{survey: survey}
}

// GetQuestions handles GET /study/questions
func (h *StudyHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.survey.Questions())
}

// Compare handles POST /study/compare
// Returns, per answered question, the share of each reference population
// that made the same choice. The study variant is stateless: nothing is
// persisted and no visitor token is required.
func (h *StudyHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req models.StudyCompareRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	resp, err := h.survey.Compare(req.Answers)
	if err != nil {
		if errors.Is(err, study.ErrNoAnswers) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "No study questions were answered")
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

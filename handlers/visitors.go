// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/aita-judge/auth"
	"github.com/danielhkuo/aita-judge/cliparse"
	"github.com/danielhkuo/aita-judge/db"
	"github.com/danielhkuo/aita-judge/middleware"
	"github.com/danielhkuo/aita-judge/models"
)

type VisitorHandler struct {
	db  *db.DB
	cfg cliparse.Config
}

func NewVisitorHandler(conn *db.DB, cfg cliparse.Config) *VisitorHandler {
	return &VisitorHandler{db: conn, cfg: cfg}
}

// Claim handles POST /visitors/claim
// Issues an opaque visitor token. The client stores it locally and replays
// it on every submission; one token gets one submission per dataset version.
func (h *VisitorHandler) Claim(w http.ResponseWriter, r *http.Request) {
	token := auth.GenerateVisitorToken()

	clientIP := middleware.GetClientIP(r)
	ipHash := auth.HashIP(clientIP, h.cfg.AdminKeySalt)
	userAgent := r.UserAgent()

	_, err := h.db.Exec(`
		INSERT INTO visitor (token, created_at, ip_hash, user_agent)
		VALUES (?, ?, ?, ?)
	`, token, time.Now(), ipHash, userAgent)

	if err != nil {
		slog.Error("failed to insert visitor", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to claim visitor token")
		return
	}

	slog.Info("visitor claimed", "token", token)

	middleware.JSONResponse(w, http.StatusCreated, models.ClaimVisitorResponse{
		VisitorToken: token,
	})
}

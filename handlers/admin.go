// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/aita-judge/auth"
	"github.com/danielhkuo/aita-judge/cliparse"
	"github.com/danielhkuo/aita-judge/dataset"
	"github.com/danielhkuo/aita-judge/db"
	"github.com/danielhkuo/aita-judge/middleware"
	"github.com/danielhkuo/aita-judge/models"
)

// AdminServiceID is the fixed identity the admin key is derived from.
// There is one admin surface for the whole service, not one per resource.
const AdminServiceID = "aita-judge"

type AdminHandler struct {
	db     *db.DB
	cfg    cliparse.Config
	loader *dataset.Loader
}

func NewAdminHandler(conn *db.DB, cfg cliparse.Config, loader *dataset.Loader) *AdminHandler {
	return &AdminHandler{db: conn, cfg: cfg, loader: loader}
}

// ReloadDataset handles POST /dataset/reload
// Fetches the feed once and replaces the scenario collection. The old and
// new datasets are never merged; a successful reload bumps the version and
// re-opens submission for every visitor.
func (h *AdminHandler) ReloadDataset(w http.ResponseWriter, r *http.Request) {
	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(AdminServiceID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	snap, err := h.loader.Reload(r.Context())
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadGateway, "Feed fetch failed")
		return
	}

	// Audit row; also what seeds the version counter on restart
	if err := RecordDatasetLoad(h.db, snap); err != nil {
		slog.Error("failed to record dataset load", "error", err, "version", snap.Version)
	}

	middleware.JSONResponse(w, http.StatusOK, models.ReloadResponse{
		DatasetVersion: snap.Version,
		ScenarioCount:  len(snap.Scenarios),
		Source:         snap.Source,
	})
}

// RecordDatasetLoad persists one dataset_load audit row. Shared with main,
// which records the initial load at startup.
func RecordDatasetLoad(conn *db.DB, snap dataset.Snapshot) error {
	_, err := conn.Exec(`
		INSERT INTO dataset_load (version, source, scenario_count, loaded_at)
		VALUES (?, ?, ?, ?)
	`, snap.Version, snap.Source, len(snap.Scenarios), snap.LoadedAt)
	return err
}

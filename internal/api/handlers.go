// Replayed - Personal Streaming History Analytics
// Copyright 2026 The Replayed Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/replayed-app/replayed

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/replayed-app/replayed/internal/config"
	"github.com/replayed-app/replayed/internal/logging"
	"github.com/replayed-app/replayed/internal/session"
)

// Handler holds the HTTP handlers and their dependencies.
type Handler struct {
	cfg       *config.Config
	store     *session.Store
	loc       *time.Location
	version   string
	startTime time.Time
}

// NewHandler creates the handler set. loc is the location used for
// day-of-week and hour bucketing; nil falls back to server local time.
func NewHandler(cfg *config.Config, store *session.Store, loc *time.Location, version string) *Handler {
	return &Handler{
		cfg:       cfg,
		store:     store,
		loc:       loc,
		version:   version,
		startTime: time.Now(),
	}
}

// sessionFromRequest resolves the {sessionID} URL parameter to a live
// session, writing a 404 and returning nil when it is unknown or expired.
func (h *Handler) sessionFromRequest(w http.ResponseWriter, r *http.Request) *session.Session {
	id := chi.URLParam(r, "sessionID")
	sess, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			WriteNotFound(w, r, "session not found or expired")
			return nil
		}
		logging.Ctx(r.Context()).Error().Err(err).Msg("Session lookup failed")
		NewResponseWriter(w, r).InternalError("session lookup failed")
		return nil
	}
	return sess
}

// HealthResponse is the payload for the health endpoint.
type HealthResponse struct {
	Status         string `json:"status"`
	Version        string `json:"version"`
	UptimeSeconds  int64  `json:"uptime_seconds"`
	ActiveSessions int    `json:"active_sessions"`
}

// Health handles GET /api/v1/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, HealthResponse{
		Status:         "ok",
		Version:        h.version,
		UptimeSeconds:  int64(time.Since(h.startTime).Seconds()),
		ActiveSessions: h.store.Count(),
	})
}

// HealthLive handles GET /api/v1/health/live
// Liveness: the process is up and serving.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, map[string]string{"status": "alive"})
}

// HealthReady handles GET /api/v1/health/ready
// Readiness: all state is in-memory, so readiness tracks liveness.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, map[string]string{"status": "ready"})
}

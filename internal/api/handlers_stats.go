// Replayed - Personal Streaming History Analytics
// Copyright 2026 The Replayed Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/replayed-app/replayed

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/replayed-app/replayed/internal/logging"
	"github.com/replayed-app/replayed/internal/metrics"
	"github.com/replayed-app/replayed/internal/models"
	"github.com/replayed-app/replayed/internal/session"
	"github.com/replayed-app/replayed/internal/stats"
	"github.com/replayed-app/replayed/internal/validation"
)

// statsQuery holds the validated query parameters shared by the
// aggregation endpoints. Start and end are "YYYY-MM" months, inclusive on
// both sides; omitting both disables range filtering entirely.
type statsQuery struct {
	Start string `validate:"omitempty,yearmonth"`
	End   string `validate:"omitempty,yearmonth"`
	Top   int    `validate:"omitempty,min=1"`
}

// parseStatsQuery extracts and validates the query parameters, writing a
// 400 response and returning false on failure.
func (h *Handler) parseStatsQuery(w http.ResponseWriter, r *http.Request) (statsQuery, bool) {
	rw := NewResponseWriter(w, r)

	q := statsQuery{
		Start: r.URL.Query().Get("start"),
		End:   r.URL.Query().Get("end"),
	}

	if raw := r.URL.Query().Get("top"); raw != "" {
		top, err := strconv.Atoi(raw)
		if err != nil {
			rw.BadRequest("top must be an integer")
			return q, false
		}
		q.Top = top
	}

	if verr := validation.ValidateStruct(&q); verr != nil {
		rw.ValidationError("invalid query parameters", verr.Fields())
		return q, false
	}

	if q.Top > h.cfg.Stats.MaxTopN {
		q.Top = h.cfg.Stats.MaxTopN
	}
	if q.Top == 0 {
		q.Top = h.cfg.Stats.DefaultTopN
	}

	return q, true
}

// filteredEntries returns the session's event list with the query's range
// filter applied.
func filteredEntries(sess *session.Session, q statsQuery) []models.StreamingEntry {
	return stats.FilterByRange(sess.Entries(), q.Start, q.End)
}

// StatsResponse is the payload of the main statistics endpoint.
type StatsResponse struct {
	Stats models.ProcessedStats `json:"stats"`

	// Play-count rankings, present only when the plays_ranking feature
	// flag is enabled.
	TopArtistsByPlays []models.RankedEntry `json:"top_artists_by_plays,omitempty"`
	TopTracksByPlays  []models.RankedEntry `json:"top_tracks_by_plays,omitempty"`
}

// Stats handles GET /api/v1/sessions/{sessionID}/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	sess := h.sessionFromRequest(w, r)
	if sess == nil {
		return
	}
	q, ok := h.parseStatsQuery(w, r)
	if !ok {
		return
	}

	start := time.Now()
	entries := filteredEntries(sess, q)
	result := stats.Compute(entries, stats.Options{TopN: q.Top})

	if !h.cfg.Features.MonthlyTrends {
		result.Monthly = []models.MonthlyMinutes{}
	}

	resp := StatsResponse{Stats: result}
	if h.cfg.Features.PlaysRanking {
		resp.TopArtistsByPlays = stats.TopArtistsByPlays(entries, q.Top)
		resp.TopTracksByPlays = stats.TopTracksByPlays(entries, q.Top)
	}
	metrics.ObserveCompute("stats", time.Since(start))

	logging.Ctx(r.Context()).Debug().
		Str("session_id", sess.ID).
		Int("entries", len(entries)).
		Str("start", q.Start).
		Str("end", q.End).
		Msg("Stats computed")

	WriteSuccess(w, r, resp)
}

// HeatmapResponse pairs the heatmap matrix with the day-index mapping so
// clients never hardcode which row is Sunday.
type HeatmapResponse struct {
	Heatmap  models.HeatmapData `json:"heatmap"`
	DayNames []string           `json:"day_names"`
}

// Heatmap handles GET /api/v1/sessions/{sessionID}/heatmap
func (h *Handler) Heatmap(w http.ResponseWriter, r *http.Request) {
	if !h.cfg.Features.Heatmap {
		WriteNotFound(w, r, "heatmap is disabled")
		return
	}

	sess := h.sessionFromRequest(w, r)
	if sess == nil {
		return
	}
	q, ok := h.parseStatsQuery(w, r)
	if !ok {
		return
	}

	start := time.Now()
	result := stats.ComputeHeatmap(filteredEntries(sess, q), h.loc)
	metrics.ObserveCompute("heatmap", time.Since(start))

	WriteSuccess(w, r, HeatmapResponse{
		Heatmap:  result,
		DayNames: models.DayNames,
	})
}

// Patterns handles GET /api/v1/sessions/{sessionID}/patterns
func (h *Handler) Patterns(w http.ResponseWriter, r *http.Request) {
	if !h.cfg.Features.Patterns {
		WriteNotFound(w, r, "patterns analysis is disabled")
		return
	}

	sess := h.sessionFromRequest(w, r)
	if sess == nil {
		return
	}
	q, ok := h.parseStatsQuery(w, r)
	if !ok {
		return
	}

	start := time.Now()
	result := stats.ComputePatterns(filteredEntries(sess, q), h.loc)
	metrics.ObserveCompute("patterns", time.Since(start))

	WriteSuccess(w, r, result)
}

// RangeResponse reports the months covered by the session's uploads.
type RangeResponse struct {
	DateRange *models.DateRange `json:"date_range"`
}

// Range handles GET /api/v1/sessions/{sessionID}/range
func (h *Handler) Range(w http.ResponseWriter, r *http.Request) {
	sess := h.sessionFromRequest(w, r)
	if sess == nil {
		return
	}

	WriteSuccess(w, r, RangeResponse{DateRange: sess.DateRange()})
}

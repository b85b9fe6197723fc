// Replayed - Personal Streaming History Analytics
// Copyright 2026 The Replayed Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/replayed-app/replayed

// Package metrics provides Prometheus instrumentation for the ingestion
// and aggregation pipeline: upload volume and classification outcomes,
// records ingested and excluded, and aggregation latency.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Upload metrics
	FilesUploaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "replayed_files_uploaded_total",
			Help: "Total number of uploaded export files by classified type",
		},
		[]string{"type"},
	)

	FileClassificationFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "replayed_file_classification_fallbacks_total",
			Help: "Uploads classified through the heuristic fallback chain instead of schema detection",
		},
	)

	RecordsIngested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "replayed_records_ingested_total",
			Help: "Total number of playback records merged into event lists",
		},
	)

	RecordsExcluded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "replayed_records_excluded_total",
			Help: "Records dropped during normalization",
		},
		[]string{"reason"}, // "non_music", "incomplete"
	)

	// Aggregation metrics
	StatsComputeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "replayed_stats_compute_duration_seconds",
			Help:    "Duration of statistics computations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"kind"}, // "stats", "heatmap", "patterns"
	)

	// Session metrics
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "replayed_active_sessions",
			Help: "Current number of live upload sessions",
		},
	)

	// API metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "replayed_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "replayed_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)
)

// ObserveCompute records one aggregation pass of the given kind.
func ObserveCompute(kind string, d time.Duration) {
	StatsComputeDuration.WithLabelValues(kind).Observe(d.Seconds())
}

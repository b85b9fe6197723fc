// Replayed - Personal Streaming History Analytics
// Copyright 2026 The Replayed Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/replayed-app/replayed

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/replayed-app/replayed/internal/config"
	"github.com/replayed-app/replayed/internal/session"
)

// Router wires handlers and middleware into the Chi routing tree.
type Router struct {
	handler    *Handler
	middleware *Middleware
}

// NewRouter creates the router from configuration. loc is the location
// used for time-of-day bucketing in the pattern endpoints.
func NewRouter(cfg *config.Config, store *session.Store, loc *time.Location, version string) *Router {
	mw := NewMiddleware(&MiddlewareConfig{
		CORSAllowedOrigins: cfg.Security.CORSOrigins,
		CORSAllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type"},
		CORSMaxAge:         86400,

		RateLimitRequests: cfg.Security.RateLimitReqs,
		RateLimitWindow:   cfg.Security.RateLimitWindow,
	})

	return &Router{
		handler:    NewHandler(cfg, store, loc, version),
		middleware: mw,
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order. CORS must be
	// global to handle OPTIONS preflight.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.middleware.CORS())

	// Health endpoints get permissive rate limiting so monitoring can
	// poll frequently.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.middleware.RateLimitHealth())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// Session and aggregation endpoints.
	r.Route("/api/v1/sessions", func(r chi.Router) {
		r.Use(router.middleware.RateLimit())
		r.Use(PrometheusMetrics())

		r.Post("/", router.handler.CreateSession)

		r.Route("/{sessionID}", func(r chi.Router) {
			r.Post("/files", router.handler.UploadFiles)
			r.Delete("/files", router.handler.ClearFiles)

			r.Get("/stats", router.handler.Stats)
			r.Get("/heatmap", router.handler.Heatmap)
			r.Get("/patterns", router.handler.Patterns)
			r.Get("/range", router.handler.Range)
		})
	})

	// Prometheus metrics endpoint.
	r.Handle("/metrics", promhttp.Handler())

	return r
}

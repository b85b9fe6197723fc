// Replayed - Personal Streaming History Analytics
// Copyright 2026 The Replayed Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/replayed-app/replayed

// Package main is the entry point for the Replayed server.
//
// Replayed is a self-hosted analytics dashboard for personal streaming
// history exports. Users upload their export files into a short-lived
// in-memory session and the server answers aggregation queries over the
// merged playback history: top artists and tracks, monthly listening
// trends, a day-of-week by hour heatmap, and behavioral pattern splits.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered defaults, config file, and environment (Koanf v2)
//  2. Logging: zerolog with configurable level and format
//  3. Session store: in-memory TTL store for uploaded exports
//  4. HTTP server: Chi REST API with Prometheus metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (REPLAYED_ prefix, e.g. REPLAYED_SERVER_PORT)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting new connections and waits for in-flight requests to complete
// (10s timeout). Session data is in-memory only and is discarded on exit.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/replayed-app/replayed/internal/api"
	"github.com/replayed-app/replayed/internal/config"
	"github.com/replayed-app/replayed/internal/logging"
	"github.com/replayed-app/replayed/internal/session"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Replayed")

	loc, err := cfg.Stats.Location()
	if err != nil {
		logging.Fatal().Err(err).Str("timezone", cfg.Stats.Timezone).Msg("Invalid timezone")
	}
	logging.Info().
		Str("timezone", loc.String()).
		Dur("session_ttl", cfg.Session.TTL).
		Msg("Configuration loaded")

	store := session.NewStore(cfg.Session.TTL, cfg.Session.CleanupInterval)

	router := api.NewRouter(cfg, store, loc, version)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	// Setup signal handling for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server error")
		}
	}

	// Stop accepting new connections and drain in-flight requests
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}

	logging.Info().Msg("Application stopped gracefully")
}

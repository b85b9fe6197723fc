// Replayed - Personal Streaming History Analytics
// Copyright 2026 The Replayed Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/replayed-app/replayed

// Package config provides layered configuration for Replayed using Koanf:
// built-in defaults, an optional YAML config file, and environment
// variables, in increasing order of precedence.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Upload   UploadConfig   `koanf:"upload"`
	Stats    StatsConfig    `koanf:"stats"`
	Session  SessionConfig  `koanf:"session"`
	Features FeatureConfig  `koanf:"features"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// UploadConfig bounds the upload surface.
type UploadConfig struct {
	// MaxFileBytes is the per-file size limit for uploaded exports.
	MaxFileBytes int64 `koanf:"max_file_bytes"`

	// MaxFilesPerBatch limits the number of files in one upload request.
	MaxFilesPerBatch int `koanf:"max_files_per_batch"`
}

// StatsConfig tunes the aggregation layer.
type StatsConfig struct {
	// DefaultTopN and MaxTopN bound the ranking length clients may request.
	DefaultTopN int `koanf:"default_top_n"`
	MaxTopN     int `koanf:"max_top_n"`

	// Timezone names the location used for day-of-week and hour bucketing
	// in the pattern analyzer. "Local" uses the server's local time, which
	// matches the historical dashboard behavior; any IANA name (e.g.
	// "Europe/Berlin") pins bucketing for reproducible output.
	Timezone string `koanf:"timezone"`
}

// SessionConfig controls the in-memory upload-session store.
type SessionConfig struct {
	// TTL is how long an idle session's data is retained.
	TTL time.Duration `koanf:"ttl"`

	// CleanupInterval is how often expired sessions are purged.
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// FeatureConfig gathers the dashboard feature flags as named booleans,
// resolved once at process start. Disabled surfaces respond 404.
type FeatureConfig struct {
	Heatmap       bool `koanf:"heatmap"`
	Patterns      bool `koanf:"patterns"`
	MonthlyTrends bool `koanf:"monthly_trends"`
	PlaysRanking  bool `koanf:"plays_ranking"`
}

// SecurityConfig holds the HTTP hardening settings.
type SecurityConfig struct {
	CORSOrigins     []string      `koanf:"cors_origins"`
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for inconsistencies. It is called
// after unmarshaling and before the configuration is handed out.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Upload.MaxFileBytes <= 0 {
		return fmt.Errorf("upload.max_file_bytes must be positive, got %d", c.Upload.MaxFileBytes)
	}
	if c.Upload.MaxFilesPerBatch <= 0 {
		return fmt.Errorf("upload.max_files_per_batch must be positive, got %d", c.Upload.MaxFilesPerBatch)
	}
	if c.Stats.DefaultTopN <= 0 {
		return fmt.Errorf("stats.default_top_n must be positive, got %d", c.Stats.DefaultTopN)
	}
	if c.Stats.MaxTopN < c.Stats.DefaultTopN {
		return fmt.Errorf("stats.max_top_n (%d) must be >= stats.default_top_n (%d)",
			c.Stats.MaxTopN, c.Stats.DefaultTopN)
	}
	if _, err := c.Stats.Location(); err != nil {
		return fmt.Errorf("stats.timezone: %w", err)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive, got %s", c.Session.TTL)
	}
	return nil
}

// Location resolves the configured timezone name. "Local" or "" yields
// the server's local time.
func (s StatsConfig) Location() (*time.Location, error) {
	if s.Timezone == "" || s.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}

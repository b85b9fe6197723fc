// Replayed - Personal Streaming History Analytics
// Copyright 2026 The Replayed Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/replayed-app/replayed

package config

import (
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig() does not validate: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8480 {
		t.Errorf("Server.Port = %d, want 8480", cfg.Server.Port)
	}
	if cfg.Stats.DefaultTopN != 10 {
		t.Errorf("Stats.DefaultTopN = %d, want 10", cfg.Stats.DefaultTopN)
	}
	if cfg.Session.TTL != 2*time.Hour {
		t.Errorf("Session.TTL = %s, want 2h", cfg.Session.TTL)
	}
	if !cfg.Features.Heatmap || !cfg.Features.Patterns {
		t.Error("feature flags should default to enabled")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("REPLAYED_SERVER_PORT", "9000")
	t.Setenv("REPLAYED_STATS_TIMEZONE", "UTC")
	t.Setenv("REPLAYED_SECURITY_CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Stats.Timezone != "UTC" {
		t.Errorf("Stats.Timezone = %q, want UTC", cfg.Stats.Timezone)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Security.CORSOrigins) != len(want) {
		t.Fatalf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	for i := range want {
		if cfg.Security.CORSOrigins[i] != want[i] {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.Security.CORSOrigins[i], want[i])
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults pass", func(*Config) {}, false},
		{"zero port", func(c *Config) { c.Server.Port = 0 }, true},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, true},
		{"zero max file bytes", func(c *Config) { c.Upload.MaxFileBytes = 0 }, true},
		{"zero batch limit", func(c *Config) { c.Upload.MaxFilesPerBatch = 0 }, true},
		{"zero top n", func(c *Config) { c.Stats.DefaultTopN = 0 }, true},
		{"max below default", func(c *Config) { c.Stats.MaxTopN = 5 }, true},
		{"bad timezone", func(c *Config) { c.Stats.Timezone = "Mars/Olympus" }, true},
		{"zero ttl", func(c *Config) { c.Session.TTL = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLocation(t *testing.T) {
	tests := []struct {
		timezone string
		want     string
		wantErr  bool
	}{
		{"", time.Local.String(), false},
		{"Local", time.Local.String(), false},
		{"UTC", "UTC", false},
		{"Europe/Berlin", "Europe/Berlin", false},
		{"Not/AZone", "", true},
	}

	for _, tt := range tests {
		t.Run("tz_"+tt.timezone, func(t *testing.T) {
			s := StatsConfig{Timezone: tt.timezone}
			loc, err := s.Location()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Location() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && loc.String() != tt.want {
				t.Errorf("Location() = %s, want %s", loc, tt.want)
			}
		})
	}
}

func TestEnvTransform(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"REPLAYED_SERVER_PORT", "server.port"},
		{"REPLAYED_UPLOAD_MAX_FILE_BYTES", "upload.max_file_bytes"},
		{"REPLAYED_FEATURES_MONTHLY_TRENDS", "features.monthly_trends"},
	}

	for _, tt := range tests {
		if got := envTransform(tt.in); got != tt.want {
			t.Errorf("envTransform(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

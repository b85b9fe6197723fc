// Replayed - Personal Streaming History Analytics
// Copyright 2026 The Replayed Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/replayed-app/replayed

package models

// RankedEntry is one row of a top-artists or top-tracks ranking. For
// artists, Artist is empty and Name carries the artist name; for tracks,
// Name is the track title and Artist its artist.
type RankedEntry struct {
	Rank      int    `json:"rank"`
	Name      string `json:"name"`
	Artist    string `json:"artist,omitempty"`
	PlayCount int    `json:"play_count"`
	TotalMs   int64  `json:"total_ms"`
}

// MonthlyMinutes is one point of the monthly trend series.
type MonthlyMinutes struct {
	Month   string `json:"month"` // "YYYY-MM"
	Minutes int    `json:"minutes"`
}

// ProcessedStats is the aggregate statistics object consumed by the
// dashboard. It is recomputed in full on every date-range change or new
// upload; there is no incremental update path.
//
// Invariants:
//   - TotalListeningTime is the sum of all included entries' MsPlayed
//     converted to hours, unrounded.
//   - TotalTracks and TotalArtists are the cardinality of the distinct-key
//     maps behind the rankings, not the (possibly truncated) list lengths.
type ProcessedStats struct {
	TotalListeningTime float64 `json:"total_listening_time_hours"`
	TotalTracks        int     `json:"total_tracks"`
	TotalArtists       int     `json:"total_artists"`

	TopArtists []RankedEntry `json:"top_artists"`
	TopTracks  []RankedEntry `json:"top_tracks"`

	Monthly []MonthlyMinutes `json:"monthly"`

	AvgMinutesPerDay float64 `json:"avg_minutes_per_day"`
	MostActiveDay    string  `json:"most_active_day,omitempty"` // "YYYY-MM-DD"
	MostActiveDayMin int     `json:"most_active_day_minutes"`
}

// EmptyStats returns the degenerate all-zero stats object produced for an
// empty event list. Slices are non-nil so the JSON encoding carries empty
// arrays rather than nulls.
func EmptyStats() ProcessedStats {
	return ProcessedStats{
		TopArtists: []RankedEntry{},
		TopTracks:  []RankedEntry{},
		Monthly:    []MonthlyMinutes{},
	}
}

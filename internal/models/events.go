// Replayed - Personal Streaming History Analytics
// Copyright 2026 The Replayed Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/replayed-app/replayed

// Package models provides data structures for the Replayed application.
package models

import (
	"time"
)

// RawRecord is one JSON object from an uploaded export file. Its shape is
// unknown until it passes schema detection.
type RawRecord map[string]any

// StreamingEntry is the canonical playback event. Every aggregation in the
// application consumes a slice of these. Entries are immutable once created
// and owned exclusively by the in-memory session that holds them.
type StreamingEntry struct {
	// EndTime is the timestamp string as it appears in the export.
	// The standard export uses "2006-01-02 15:04"; entries normalized
	// from the extended export carry an RFC3339 timestamp.
	EndTime    string `json:"endTime"`
	ArtistName string `json:"artistName"`
	TrackName  string `json:"trackName"`
	MsPlayed   int64  `json:"msPlayed"`
}

// entryTimeLayouts are tried in order when parsing EndTime.
var entryTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// Time parses EndTime in the given location. The boolean is false when the
// timestamp does not match any known export layout.
func (e *StreamingEntry) Time(loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range entryTimeLayouts {
		if t, err := time.ParseInLocation(layout, e.EndTime, loc); err == nil {
			// RFC3339 timestamps carry their own offset; convert so
			// bucketing always happens in the requested location.
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}

// MonthKey returns the zero-padded "YYYY-MM" key for the entry, or "" when
// the timestamp cannot be parsed. The format sorts lexicographically in
// chronological order, which the date-range filter and the monthly trend
// series rely on.
func (e *StreamingEntry) MonthKey() string {
	t, ok := e.Time(time.UTC)
	if !ok {
		return ""
	}
	return t.Format("2006-01")
}

// DayKey returns the "YYYY-MM-DD" calendar-date key for the entry, or ""
// when the timestamp cannot be parsed.
func (e *StreamingEntry) DayKey() string {
	t, ok := e.Time(time.UTC)
	if !ok {
		return ""
	}
	return t.Format("2006-01-02")
}

// ExtendedEntry is one record of the extended export format. Metadata
// fields are nullable; podcast and audiobook entries carry episode or
// audiobook identifiers instead of track metadata.
type ExtendedEntry struct {
	Timestamp   string `json:"ts"`
	Platform    string `json:"platform,omitempty"`
	MsPlayed    int64  `json:"ms_played"`
	ConnCountry string `json:"conn_country,omitempty"`

	TrackName  *string `json:"master_metadata_track_name"`
	ArtistName *string `json:"master_metadata_album_artist_name"`
	AlbumName  *string `json:"master_metadata_album_album_name"`
	TrackURI   *string `json:"spotify_track_uri"`

	EpisodeName     *string `json:"episode_name"`
	EpisodeShowName *string `json:"episode_show_name"`
	EpisodeURI      *string `json:"spotify_episode_uri"`

	AudiobookTitle *string `json:"audiobook_title"`
	AudiobookURI   *string `json:"audiobook_uri"`

	ReasonStart string `json:"reason_start,omitempty"`
	ReasonEnd   string `json:"reason_end,omitempty"`
	Shuffle     bool   `json:"shuffle,omitempty"`
	Skipped     bool   `json:"skipped,omitempty"`
	Offline     bool   `json:"offline,omitempty"`
	Incognito   bool   `json:"incognito_mode,omitempty"`
}

// DateRange is the inclusive month-granularity window covered by a merged
// event list, in zero-padded "YYYY-MM" form.
type DateRange struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// Replayed - Personal Streaming History Analytics
// Copyright 2026 The Replayed Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/replayed-app/replayed

package ingest

import (
	"github.com/replayed-app/replayed/internal/models"
)

// NormalizeEntry converts one extended record to the canonical event shape.
// It returns nil when the record is not a complete music entry: track or
// artist name missing, or an episode name or audiobook title present.
// Dropping podcast, audiobook and video entries is the intended
// content-type filter for music statistics, not an error.
func NormalizeEntry(e models.ExtendedEntry) *models.StreamingEntry {
	if e.TrackName == nil || *e.TrackName == "" {
		return nil
	}
	if e.ArtistName == nil || *e.ArtistName == "" {
		return nil
	}
	if e.EpisodeName != nil && *e.EpisodeName != "" {
		return nil
	}
	if e.AudiobookTitle != nil && *e.AudiobookTitle != "" {
		return nil
	}

	return &models.StreamingEntry{
		EndTime:    e.Timestamp,
		ArtistName: *e.ArtistName,
		TrackName:  *e.TrackName,
		MsPlayed:   e.MsPlayed,
	}
}

// exclusionReason labels a dropped record for the exclusion counter:
// "non_music" for podcast and audiobook plays, "incomplete" for records
// missing track or artist metadata.
func exclusionReason(e models.ExtendedEntry) string {
	if e.EpisodeName != nil && *e.EpisodeName != "" {
		return "non_music"
	}
	if e.AudiobookTitle != nil && *e.AudiobookTitle != "" {
		return "non_music"
	}
	return "incomplete"
}

// NormalizeEntries maps a batch of extended records, dropping excluded ones.
func NormalizeEntries(entries []models.ExtendedEntry) []models.StreamingEntry {
	out := make([]models.StreamingEntry, 0, len(entries))
	for _, e := range entries {
		if norm := NormalizeEntry(e); norm != nil {
			out = append(out, *norm)
		}
	}
	return out
}

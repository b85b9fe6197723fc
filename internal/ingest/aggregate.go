// Replayed - Personal Streaming History Analytics
// Copyright 2026 The Replayed Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/replayed-app/replayed

package ingest

import (
	"github.com/replayed-app/replayed/internal/metrics"
	"github.com/replayed-app/replayed/internal/models"
)

// Aggregate merges classified files into the canonical event list.
// Streaming files contribute their records directly; extended files are
// normalized and filtered; wrapped, userdata and unknown files contribute
// nothing. Concatenation follows the order of the file slice.
//
// The returned DateRange is the inclusive "YYYY-MM" span covered by all
// contributing events, nil when no event carries a parseable timestamp.
func Aggregate(files []models.UploadedFile) ([]models.StreamingEntry, *models.DateRange) {
	var merged []models.StreamingEntry

	for _, f := range files {
		switch f.Type {
		case models.FileTypeStreaming:
			merged = append(merged, toStreamingEntries(f.Records)...)
		case models.FileTypeExtended:
			for _, ee := range toExtendedEntries(f.Records) {
				norm := NormalizeEntry(ee)
				if norm == nil {
					metrics.RecordsExcluded.WithLabelValues(exclusionReason(ee)).Inc()
					continue
				}
				merged = append(merged, *norm)
			}
		}
	}

	return merged, coveredRange(merged)
}

// coveredRange computes the min/max month keys across the event list.
// Zero-padded "YYYY-MM" keys compare correctly as strings.
func coveredRange(entries []models.StreamingEntry) *models.DateRange {
	var r *models.DateRange
	for i := range entries {
		key := entries[i].MonthKey()
		if key == "" {
			continue
		}
		if r == nil {
			r = &models.DateRange{Min: key, Max: key}
			continue
		}
		if key < r.Min {
			r.Min = key
		}
		if key > r.Max {
			r.Max = key
		}
	}
	return r
}

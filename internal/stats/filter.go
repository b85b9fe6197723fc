// Replayed - Personal Streaming History Analytics
// Copyright 2026 The Replayed Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/replayed-app/replayed

package stats

import (
	"github.com/replayed-app/replayed/internal/models"
)

// FilterByRange restricts the event list to an inclusive month-granularity
// window. Bounds are zero-padded "YYYY-MM" keys; an empty bound is
// unbounded on that side, and two empty bounds return the input unchanged.
// Entries without a parseable timestamp have no month key and are dropped
// whenever any bound is set.
func FilterByRange(entries []models.StreamingEntry, start, end string) []models.StreamingEntry {
	if start == "" && end == "" {
		return entries
	}

	out := make([]models.StreamingEntry, 0, len(entries))
	for i := range entries {
		key := entries[i].MonthKey()
		if key == "" {
			continue
		}
		if start != "" && key < start {
			continue
		}
		if end != "" && key > end {
			continue
		}
		out = append(out, entries[i])
	}
	return out
}

// Replayed - Personal Streaming History Analytics
// Copyright 2026 The Replayed Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/replayed-app/replayed

package ingest

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/replayed-app/replayed/internal/models"
)

// DecodeRecords parses the contents of an uploaded file into raw records.
// The export formats are always a single top-level JSON array.
func DecodeRecords(data []byte) ([]models.RawRecord, error) {
	var records []models.RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse upload as JSON array: %w", err)
	}
	return records, nil
}

// toStreamingEntries reinterprets raw records as standard entries.
// Records that fail to round-trip are skipped; by the time this runs the
// file has already been classified, so stray malformed records are dropped
// rather than failing the whole file.
func toStreamingEntries(records []models.RawRecord) []models.StreamingEntry {
	out := make([]models.StreamingEntry, 0, len(records))
	for _, rec := range records {
		var entry models.StreamingEntry
		if !remarshal(rec, &entry) {
			continue
		}
		if entry.MsPlayed < 0 {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// toExtendedEntries reinterprets raw records as extended entries.
func toExtendedEntries(records []models.RawRecord) []models.ExtendedEntry {
	out := make([]models.ExtendedEntry, 0, len(records))
	for _, rec := range records {
		var entry models.ExtendedEntry
		if !remarshal(rec, &entry) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// remarshal converts a generically-decoded record into a typed struct.
func remarshal(rec models.RawRecord, dst any) bool {
	raw, err := json.Marshal(rec)
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

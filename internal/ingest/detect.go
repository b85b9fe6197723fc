// Replayed - Personal Streaming History Analytics
// Copyright 2026 The Replayed Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/replayed-app/replayed

package ingest

import (
	"fmt"
	"regexp"

	"github.com/replayed-app/replayed/internal/models"
)

// DetectionResult is the outcome of schema detection for one file's records.
type DetectionResult struct {
	// Type is models.FileTypeStreaming or models.FileTypeExtended when
	// Valid, models.FileTypeUnknown otherwise.
	Type models.FileType

	// Valid reports whether every record conformed to a known shape.
	Valid bool

	// Err carries the diagnostic for an unknown result, naming the first
	// violated field of each attempted shape. Nil when Valid.
	Err error
}

// standardFields are the required fields of the standard export shape, in
// the order they are checked. endTime, artistName and trackName must be
// strings; msPlayed must be a non-negative number.
var standardFields = []string{"endTime", "artistName", "trackName", "msPlayed"}

// extendedFields are the required fields of the extended export shape.
// The metadata fields (track, artist, episode, audiobook) are nullable and
// deliberately not required here - their presence or absence is what the
// normalizer uses to include or exclude the record.
var extendedFields = []string{"ts", "ms_played"}

// DetectSchema classifies an array of raw records as one of the two known
// export shapes. Validation is all-or-nothing: a single non-conforming
// record fails the match for that shape. An empty or nil input is
// immediately unknown/invalid.
func DetectSchema(records []models.RawRecord) DetectionResult {
	if len(records) == 0 {
		return DetectionResult{
			Type: models.FileTypeUnknown,
			Err:  fmt.Errorf("empty record array"),
		}
	}

	stdErr := validateAll(records, validateStandardRecord)
	if stdErr == nil {
		return DetectionResult{Type: models.FileTypeStreaming, Valid: true}
	}

	extErr := validateAll(records, validateExtendedRecord)
	if extErr == nil {
		return DetectionResult{Type: models.FileTypeExtended, Valid: true}
	}

	return DetectionResult{
		Type: models.FileTypeUnknown,
		Err:  fmt.Errorf("no known schema matched: standard: %v; extended: %v", stdErr, extErr),
	}
}

// validateAll applies one shape validator to every record and returns the
// first violation, annotated with the record index.
func validateAll(records []models.RawRecord, validate func(models.RawRecord) error) error {
	for i, rec := range records {
		if err := validate(rec); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

// validateStandardRecord checks one record against the standard shape.
// The error names the first violated field.
func validateStandardRecord(rec models.RawRecord) error {
	for _, field := range standardFields {
		val, ok := rec[field]
		if !ok {
			return fmt.Errorf("missing field %q", field)
		}
		if field == "msPlayed" {
			ms, ok := val.(float64)
			if !ok {
				return fmt.Errorf("field %q is not a number", field)
			}
			if ms < 0 {
				return fmt.Errorf("field %q is negative", field)
			}
			continue
		}
		if _, ok := val.(string); !ok {
			return fmt.Errorf("field %q is not a string", field)
		}
	}
	return nil
}

// validateExtendedRecord checks one record against the extended shape.
func validateExtendedRecord(rec models.RawRecord) error {
	for _, field := range extendedFields {
		val, ok := rec[field]
		if !ok {
			return fmt.Errorf("missing field %q", field)
		}
		if field == "ms_played" {
			if _, ok := val.(float64); !ok {
				return fmt.Errorf("field %q is not a number", field)
			}
			continue
		}
		if _, ok := val.(string); !ok {
			return fmt.Errorf("field %q is not a string", field)
		}
	}
	return nil
}

// Filename heuristics, used only when schema detection is inconclusive.
var (
	extendedNamePattern  = regexp.MustCompile(`^Streaming_History_Audio_.*\.json$`)
	streamingNamePattern = regexp.MustCompile(`^StreamingHistory_music_\d+\.json$`)
	wrappedNamePattern   = regexp.MustCompile(`(?i)wrapped`)
	userdataNamePattern  = regexp.MustCompile(`(?i)userdata`)
)

// classifyByFilename applies the filename-pattern heuristics. Returns
// FileTypeUnknown when no pattern matches.
func classifyByFilename(name string) models.FileType {
	switch {
	case extendedNamePattern.MatchString(name):
		return models.FileTypeExtended
	case streamingNamePattern.MatchString(name):
		return models.FileTypeStreaming
	case wrappedNamePattern.MatchString(name):
		return models.FileTypeWrapped
	case userdataNamePattern.MatchString(name):
		return models.FileTypeUserdata
	default:
		return models.FileTypeUnknown
	}
}

// sniffFirstRecord inspects the first record for a distinguishing field.
// This is the last resort before the default classification.
func sniffFirstRecord(records []models.RawRecord) models.FileType {
	if len(records) == 0 {
		return models.FileTypeUnknown
	}
	if _, ok := records[0]["ts"]; ok {
		return models.FileTypeExtended
	}
	if _, ok := records[0]["endTime"]; ok {
		return models.FileTypeStreaming
	}
	return models.FileTypeUnknown
}

// ClassifyFile determines the type of an uploaded file. The fallback chain
// is: schema detection, filename heuristics, structural sniff of the first
// record, and finally a default of the standard interpretation. The chain
// always terminates in a classification; malformed files are never
// rejected here.
//
// The returned detail string carries the detection diagnostic when the
// classification came from a fallback stage, for surfacing to the client.
func ClassifyFile(name string, records []models.RawRecord) (models.FileType, string) {
	result := DetectSchema(records)
	if result.Valid {
		return result.Type, ""
	}

	detail := ""
	if result.Err != nil {
		detail = result.Err.Error()
	}

	if ft := classifyByFilename(name); ft != models.FileTypeUnknown {
		return ft, detail
	}

	if ft := sniffFirstRecord(records); ft != models.FileTypeUnknown {
		return ft, detail
	}

	// Best-effort default: treat as standard streaming history.
	return models.FileTypeStreaming, detail
}

// Replayed - Personal Streaming History Analytics
// Copyright 2026 The Replayed Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/replayed-app/replayed

package models

// FileType classifies an uploaded export file.
type FileType string

const (
	// FileTypeStreaming is the standard streaming-history export
	// (StreamingHistory_music_N.json).
	FileTypeStreaming FileType = "streaming"

	// FileTypeExtended is the extended streaming-history export
	// (Streaming_History_Audio_*.json).
	FileTypeExtended FileType = "extended"

	// FileTypeWrapped is a yearly summary file; it carries no playback
	// events and contributes nothing to aggregation.
	FileTypeWrapped FileType = "wrapped"

	// FileTypeUserdata is an account-data file; ignored by aggregation.
	FileTypeUserdata FileType = "userdata"

	// FileTypeUnknown is an unclassifiable file.
	FileTypeUnknown FileType = "unknown"
)

// UploadedFile is one uploaded export file after classification. Records
// stay raw until aggregation so the same file can be re-interpreted if the
// classification is corrected.
type UploadedFile struct {
	Name    string      `json:"name"`
	Type    FileType    `json:"type"`
	Records []RawRecord `json:"-"`
}

// FileSummary reports the outcome of one file upload back to the client.
type FileSummary struct {
	Name        string   `json:"name"`
	Type        FileType `json:"type"`
	RecordCount int      `json:"record_count"`
	Detection   string   `json:"detection,omitempty"`
}

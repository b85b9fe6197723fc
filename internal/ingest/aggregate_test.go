// Replayed - Personal Streaming History Analytics
// Copyright 2026 The Replayed Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/replayed-app/replayed

package ingest

import (
	"testing"

	"github.com/replayed-app/replayed/internal/models"
)

func TestDecodeRecords(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantLen int
		wantErr bool
	}{
		{"valid array", `[{"endTime":"2023-05-14 21:30","msPlayed":1000}]`, 1, false},
		{"empty array", `[]`, 0, false},
		{"not an array", `{"endTime":"2023-05-14 21:30"}`, 0, true},
		{"malformed json", `[{`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeRecords([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeRecords() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(got) != tt.wantLen {
				t.Errorf("DecodeRecords() len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestAggregate(t *testing.T) {
	files := []models.UploadedFile{
		{
			Name: "StreamingHistory_music_0.json",
			Type: models.FileTypeStreaming,
			Records: []models.RawRecord{
				{
					"endTime":    "2023-03-01 10:00",
					"artistName": "Artist A",
					"trackName":  "Track A",
					"msPlayed":   float64(60000),
				},
			},
		},
		{
			Name: "Streaming_History_Audio_2023_0.json",
			Type: models.FileTypeExtended,
			Records: []models.RawRecord{
				{
					"ts":                                "2023-05-14T21:30:00Z",
					"ms_played":                         float64(120000),
					"master_metadata_track_name":        "Track B",
					"master_metadata_album_artist_name": "Artist B",
				},
				{
					"ts":           "2023-06-01T08:00:00Z",
					"ms_played":    float64(90000),
					"episode_name": "A Podcast Episode",
				},
			},
		},
		{
			Name: "Wrapped2023.json",
			Type: models.FileTypeWrapped,
			Records: []models.RawRecord{
				{"topArtist": "Artist A"},
			},
		},
	}

	entries, dates := Aggregate(files)

	if len(entries) != 2 {
		t.Fatalf("Aggregate() merged %d entries, want 2", len(entries))
	}
	if entries[0].TrackName != "Track A" || entries[1].TrackName != "Track B" {
		t.Errorf("Aggregate() order = [%s, %s], want file order preserved",
			entries[0].TrackName, entries[1].TrackName)
	}

	if dates == nil {
		t.Fatal("Aggregate() date range = nil, want covered range")
	}
	if dates.Min != "2023-03" || dates.Max != "2023-05" {
		t.Errorf("Aggregate() range = %s..%s, want 2023-03..2023-05", dates.Min, dates.Max)
	}
}

func TestAggregateEmpty(t *testing.T) {
	entries, dates := Aggregate(nil)
	if len(entries) != 0 {
		t.Errorf("Aggregate(nil) = %d entries, want 0", len(entries))
	}
	if dates != nil {
		t.Errorf("Aggregate(nil) range = %+v, want nil", dates)
	}
}

func TestAggregateSkipsNegativePlaytime(t *testing.T) {
	files := []models.UploadedFile{
		{
			Name: "StreamingHistory_music_0.json",
			Type: models.FileTypeStreaming,
			Records: []models.RawRecord{
				{
					"endTime":    "2023-03-01 10:00",
					"artistName": "Artist A",
					"trackName":  "Track A",
					"msPlayed":   float64(-5),
				},
				{
					"endTime":    "2023-03-01 11:00",
					"artistName": "Artist A",
					"trackName":  "Track A",
					"msPlayed":   float64(1000),
				},
			},
		},
	}

	entries, _ := Aggregate(files)
	if len(entries) != 1 {
		t.Fatalf("Aggregate() merged %d entries, want 1 (negative playtime dropped)", len(entries))
	}
	if entries[0].MsPlayed != 1000 {
		t.Errorf("Aggregate() kept msPlayed = %d, want 1000", entries[0].MsPlayed)
	}
}

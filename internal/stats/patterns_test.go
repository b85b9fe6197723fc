// Replayed - Personal Streaming History Analytics
// Copyright 2026 The Replayed Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/replayed-app/replayed

package stats

import (
	"testing"
	"time"

	"github.com/replayed-app/replayed/internal/models"
)

// 2023-05-14 is a Sunday, 2023-05-15 a Monday, 2023-05-16 a Tuesday.

func TestComputeHeatmap(t *testing.T) {
	entries := []models.StreamingEntry{
		entry("2023-05-14 21:30", "A", "T", 120000), // Sunday, hour 21
		entry("2023-05-14 21:45", "A", "T", 120000), // same cell, same date
		entry("2023-05-21 21:10", "A", "T", 60000),  // next Sunday, same cell
		entry("2023-05-15 09:00", "A", "T", 60000),  // Monday, hour 9
		entry("garbage", "A", "T", 600000),          // dropped
	}

	got := ComputeHeatmap(entries, time.UTC)

	if got.Minutes[0][21] != 5 {
		t.Errorf("Minutes[Sun][21] = %v, want 5", got.Minutes[0][21])
	}
	if got.Minutes[1][9] != 1 {
		t.Errorf("Minutes[Mon][9] = %v, want 1", got.Minutes[1][9])
	}

	// Two plays on 2023-05-14 count one active date; the 05-21 play adds
	// a second.
	if got.ActiveDays[0][21] != 2 {
		t.Errorf("ActiveDays[Sun][21] = %d, want 2", got.ActiveDays[0][21])
	}
	if got.ActiveDays[1][9] != 1 {
		t.Errorf("ActiveDays[Mon][9] = %d, want 1", got.ActiveDays[1][9])
	}

	if got.MaxValue != 5 {
		t.Errorf("MaxValue = %v, want 5", got.MaxValue)
	}
}

func TestComputeHeatmapEmpty(t *testing.T) {
	got := ComputeHeatmap(nil, time.UTC)
	if got.MaxValue != 0 {
		t.Errorf("MaxValue = %v, want 0", got.MaxValue)
	}
	for day := 0; day < 7; day++ {
		for hour := 0; hour < 24; hour++ {
			if got.Minutes[day][hour] != 0 || got.ActiveDays[day][hour] != 0 {
				t.Fatalf("cell [%d][%d] not zero on empty input", day, hour)
			}
		}
	}
}

func TestComputeHeatmapLocation(t *testing.T) {
	// 23:30 UTC on a Sunday is 01:30 Monday in UTC+2; the bucketing must
	// follow the injected location.
	entries := []models.StreamingEntry{
		entry("2023-05-14T23:30:00Z", "A", "T", 60000),
	}

	utc := ComputeHeatmap(entries, time.UTC)
	if utc.Minutes[0][23] != 1 {
		t.Errorf("UTC bucketing: Minutes[Sun][23] = %v, want 1", utc.Minutes[0][23])
	}

	plus2 := ComputeHeatmap(entries, time.FixedZone("UTC+2", 2*60*60))
	if plus2.Minutes[1][1] != 1 {
		t.Errorf("UTC+2 bucketing: Minutes[Mon][1] = %v, want 1", plus2.Minutes[1][1])
	}
	if plus2.Minutes[0][23] != 0 {
		t.Errorf("UTC+2 bucketing left minutes in the UTC cell")
	}
}

func TestComputePatterns(t *testing.T) {
	entries := []models.StreamingEntry{
		entry("2023-05-14 10:00", "A", "T", 1800000), // Sunday morning, 30 min
		entry("2023-05-15 13:00", "A", "T", 3600000), // Monday afternoon, 60 min
		entry("2023-05-15 19:00", "A", "T", 1800000), // Monday evening, 30 min
		entry("2023-05-16 02:00", "A", "T", 3600000), // Tuesday late night, 60 min
	}

	got := ComputePatterns(entries, time.UTC)

	if got.Weekday.Minutes != 150 || got.Weekend.Minutes != 30 {
		t.Errorf("weekday/weekend = %d/%d, want 150/30",
			got.Weekday.Minutes, got.Weekend.Minutes)
	}
	if got.Weekday.Percentage != 83 || got.Weekend.Percentage != 17 {
		t.Errorf("weekday/weekend %% = %d/%d, want 83/17",
			got.Weekday.Percentage, got.Weekend.Percentage)
	}
	if got.Weekday.Days != 2 || got.Weekend.Days != 1 {
		t.Errorf("weekday/weekend days = %d/%d, want 2/1",
			got.Weekday.Days, got.Weekend.Days)
	}

	if got.Morning != 30 || got.Afternoon != 60 || got.Evening != 30 || got.LateNight != 60 {
		t.Errorf("periods = %d/%d/%d/%d, want 30/60/30/60",
			got.Morning, got.Afternoon, got.Evening, got.LateNight)
	}

	if got.Day.Minutes != 90 || got.Night.Minutes != 90 {
		t.Errorf("day/night = %d/%d, want 90/90", got.Day.Minutes, got.Night.Minutes)
	}
	if got.Day.Percentage != 50 || got.Night.Percentage != 50 {
		t.Errorf("day/night %% = %d/%d, want 50/50", got.Day.Percentage, got.Night.Percentage)
	}

	if got.ActiveDays != 3 {
		t.Errorf("ActiveDays = %d, want 3", got.ActiveDays)
	}
}

func TestComputePatternsFractionalAccumulation(t *testing.T) {
	// Three 1.5-minute plays accumulate to 4.5 minutes and round once to
	// 5. Rounding each play individually would produce 6.
	entries := []models.StreamingEntry{
		entry("2023-05-15 09:00", "A", "T", 90000),
		entry("2023-05-15 09:10", "A", "T", 90000),
		entry("2023-05-15 09:20", "A", "T", 90000),
	}

	got := ComputePatterns(entries, time.UTC)
	if got.Morning != 5 {
		t.Errorf("Morning = %d, want 5 (rounded after accumulation)", got.Morning)
	}
}

func TestComputePatternsEmpty(t *testing.T) {
	got := ComputePatterns(nil, time.UTC)

	if got.Weekday.Percentage != 0 || got.Weekend.Percentage != 0 {
		t.Errorf("percentages on empty input = %d/%d, want 0/0",
			got.Weekday.Percentage, got.Weekend.Percentage)
	}
	if got.Day.Percentage != 0 || got.Night.Percentage != 0 {
		t.Errorf("day/night %% on empty input = %d/%d, want 0/0",
			got.Day.Percentage, got.Night.Percentage)
	}
	if got.ActiveDays != 0 {
		t.Errorf("ActiveDays = %d, want 0", got.ActiveDays)
	}
}

func TestComputePatternsPeriodBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		hour   string
		period string
	}{
		{"hour 5 is late night", "05:59", "late_night"},
		{"hour 6 starts morning", "06:00", "morning"},
		{"hour 11 is morning", "11:59", "morning"},
		{"hour 12 starts afternoon", "12:00", "afternoon"},
		{"hour 17 is afternoon", "17:59", "afternoon"},
		{"hour 18 starts evening", "18:00", "evening"},
		{"hour 23 is evening", "23:59", "evening"},
		{"hour 0 is late night", "00:00", "late_night"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := []models.StreamingEntry{
				entry("2023-05-15 "+tt.hour, "A", "T", 60000),
			}
			got := ComputePatterns(entries, time.UTC)

			periods := map[string]int{
				"morning":    got.Morning,
				"afternoon":  got.Afternoon,
				"evening":    got.Evening,
				"late_night": got.LateNight,
			}
			for period, minutes := range periods {
				want := 0
				if period == tt.period {
					want = 1
				}
				if minutes != want {
					t.Errorf("period %s = %d minutes, want %d", period, minutes, want)
				}
			}
		})
	}
}

// Replayed - Personal Streaming History Analytics
// Copyright 2026 The Replayed Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/replayed-app/replayed

package models

// HeatmapData is the day-of-week x hour-of-day listening heatmap.
// Day index 0 is Sunday, 6 is Saturday; hour index is 0-23. Both are
// derived from the event timestamp interpreted in the analyzer's
// configured location, so two viewers with different timezone settings
// see different heatmaps for the same export. That is a documented
// property of the format, not something to normalize away.
type HeatmapData struct {
	// Minutes holds accumulated listening minutes per cell.
	Minutes [7][24]float64 `json:"minutes"`

	// ActiveDays counts the distinct calendar dates contributing to each
	// cell, so repeated plays on the same date do not inflate the count.
	ActiveDays [7][24]int `json:"active_days"`

	// MaxValue is the largest single-cell value in Minutes. Consumers use
	// it only for intensity scaling, never for ranking.
	MaxValue float64 `json:"max_value"`
}

// DayNames maps day-of-week indices to day names.
var DayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// PatternBucket is one side of a two-way listening split.
type PatternBucket struct {
	Minutes    int `json:"minutes"`
	Days       int `json:"days,omitempty"`
	Percentage int `json:"percentage"`
}

// ListeningPatterns is the behavioral split of a (possibly filtered) event
// list: weekday vs weekend, and time-of-day periods combined into day vs
// night. All minute and percentage fields are rounded to the nearest
// integer at the point of return; accumulation uses fractional minutes.
type ListeningPatterns struct {
	Weekday PatternBucket `json:"weekday"`
	Weekend PatternBucket `json:"weekend"`

	// Period minutes: morning [6,12), afternoon [12,18), evening [18,24),
	// late night [0,6). Half-open intervals over the local hour.
	Morning   int `json:"morning_minutes"`
	Afternoon int `json:"afternoon_minutes"`
	Evening   int `json:"evening_minutes"`
	LateNight int `json:"late_night_minutes"`

	// Day is morning+afternoon, Night is evening+late night.
	Day   PatternBucket `json:"day"`
	Night PatternBucket `json:"night"`

	// ActiveDays is the number of distinct calendar dates in the input.
	ActiveDays int `json:"active_days"`
}

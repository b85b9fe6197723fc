// Replayed - Personal Streaming History Analytics
// Copyright 2026 The Replayed Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/replayed-app/replayed

package stats

import (
	"math"
	"time"

	"github.com/replayed-app/replayed/internal/models"
)

// ComputeHeatmap accumulates listening minutes into the 7x24 day/hour
// matrix. Day-of-week (0=Sunday) and hour are derived from each event's
// timestamp interpreted in loc; a nil loc means local time. The per-cell
// distinct-date count uses calendar-date sets so multiple plays on the
// same date count once.
func ComputeHeatmap(entries []models.StreamingEntry, loc *time.Location) models.HeatmapData {
	if loc == nil {
		loc = time.Local
	}

	var data models.HeatmapData
	cellDates := make(map[[2]int]map[string]struct{})

	for i := range entries {
		t, ok := entries[i].Time(loc)
		if !ok {
			continue
		}
		day := int(t.Weekday())
		hour := t.Hour()

		data.Minutes[day][hour] += float64(entries[i].MsPlayed) / 60000

		cell := [2]int{day, hour}
		dates, ok := cellDates[cell]
		if !ok {
			dates = make(map[string]struct{})
			cellDates[cell] = dates
		}
		dates[t.Format("2006-01-02")] = struct{}{}
	}

	for cell, dates := range cellDates {
		data.ActiveDays[cell[0]][cell[1]] = len(dates)
	}

	for day := 0; day < 7; day++ {
		for hour := 0; hour < 24; hour++ {
			if data.Minutes[day][hour] > data.MaxValue {
				data.MaxValue = data.Minutes[day][hour]
			}
		}
	}

	return data
}

// ComputePatterns produces the weekday/weekend and time-of-day splits.
// Accumulation uses fractional minutes throughout; every minute and
// percentage field is rounded once, here, at the point of return.
// Percentages divide by the sum of the two sibling buckets so they stay
// consistent with the displayed totals under rounding.
func ComputePatterns(entries []models.StreamingEntry, loc *time.Location) models.ListeningPatterns {
	if loc == nil {
		loc = time.Local
	}

	var (
		weekdayMin, weekendMin float64
		morning, afternoon     float64
		evening, lateNight     float64
	)
	weekdayDates := make(map[string]struct{})
	weekendDates := make(map[string]struct{})
	allDates := make(map[string]struct{})

	for i := range entries {
		t, ok := entries[i].Time(loc)
		if !ok {
			continue
		}
		minutes := float64(entries[i].MsPlayed) / 60000
		date := t.Format("2006-01-02")
		allDates[date] = struct{}{}

		if wd := t.Weekday(); wd == time.Sunday || wd == time.Saturday {
			weekendMin += minutes
			weekendDates[date] = struct{}{}
		} else {
			weekdayMin += minutes
			weekdayDates[date] = struct{}{}
		}

		switch hour := t.Hour(); {
		case hour >= 6 && hour < 12:
			morning += minutes
		case hour >= 12 && hour < 18:
			afternoon += minutes
		case hour >= 18:
			evening += minutes
		default: // [0,6)
			lateNight += minutes
		}
	}

	dayMin := morning + afternoon
	nightMin := evening + lateNight

	return models.ListeningPatterns{
		Weekday: models.PatternBucket{
			Minutes:    round(weekdayMin),
			Days:       len(weekdayDates),
			Percentage: percent(weekdayMin, weekdayMin+weekendMin),
		},
		Weekend: models.PatternBucket{
			Minutes:    round(weekendMin),
			Days:       len(weekendDates),
			Percentage: percent(weekendMin, weekdayMin+weekendMin),
		},
		Morning:   round(morning),
		Afternoon: round(afternoon),
		Evening:   round(evening),
		LateNight: round(lateNight),
		Day: models.PatternBucket{
			Minutes:    round(dayMin),
			Percentage: percent(dayMin, dayMin+nightMin),
		},
		Night: models.PatternBucket{
			Minutes:    round(nightMin),
			Percentage: percent(nightMin, dayMin+nightMin),
		},
		ActiveDays: len(allDates),
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

// percent rounds part/total to a whole percentage, 0 when total is 0.
func percent(part, total float64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(part / total * 100))
}

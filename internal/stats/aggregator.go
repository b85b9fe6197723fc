// Replayed - Personal Streaming History Analytics
// Copyright 2026 The Replayed Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/replayed-app/replayed

package stats

import (
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/replayed-app/replayed/internal/models"
)

// DefaultTopN is the ranking length when the caller does not specify one.
const DefaultTopN = 10

// Options configures a statistics computation.
type Options struct {
	// TopN truncates the artist and track rankings. Values <= 0 fall back
	// to DefaultTopN. Truncation never affects the distinct-entity totals.
	TopN int
}

// rankAccumulator accumulates plays and milliseconds for one ranking key.
// seen is the insertion index of the key's first occurrence and serves as
// the explicit, deterministic tie break for equal totals.
type rankAccumulator struct {
	name   string
	artist string
	plays  int
	ms     int64
	seen   int
}

// Compute produces the full aggregate statistics object for a (possibly
// filtered) event list. An empty input yields the zero-valued stats
// object, never an error.
//
// Track identity is the (track, artist) composite key; artist identity is
// the artist name alone. Rankings order descending by accumulated
// milliseconds, ties broken by first occurrence in input order.
func Compute(entries []models.StreamingEntry, opts Options) models.ProcessedStats {
	if len(entries) == 0 {
		return models.EmptyStats()
	}

	topN := opts.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	artists := make(map[string]*rankAccumulator)
	tracks := make(map[string]*rankAccumulator)
	monthMs := make(map[string]int64)
	dayMs := make(map[string]int64)
	dayFirstSeen := make(map[string]int)

	var totalMs int64

	for i := range entries {
		e := &entries[i]
		totalMs += e.MsPlayed

		acc, ok := artists[e.ArtistName]
		if !ok {
			acc = &rankAccumulator{name: e.ArtistName, seen: len(artists)}
			artists[e.ArtistName] = acc
		}
		acc.plays++
		acc.ms += e.MsPlayed

		trackKey := e.TrackName + "\x00" + e.ArtistName
		acc, ok = tracks[trackKey]
		if !ok {
			acc = &rankAccumulator{name: e.TrackName, artist: e.ArtistName, seen: len(tracks)}
			tracks[trackKey] = acc
		}
		acc.plays++
		acc.ms += e.MsPlayed

		if month := e.MonthKey(); month != "" {
			monthMs[month] += e.MsPlayed
		}
		if day := e.DayKey(); day != "" {
			if _, ok := dayFirstSeen[day]; !ok {
				dayFirstSeen[day] = i
			}
			dayMs[day] += e.MsPlayed
		}
	}

	result := models.ProcessedStats{
		// ms -> hours, fractional value preserved until presentation.
		TotalListeningTime: float64(totalMs) / 1000 / 60 / 60,
		TotalTracks:        len(tracks),
		TotalArtists:       len(artists),
		TopArtists:         rankTop(artists, topN, byTotalMs),
		TopTracks:          rankTop(tracks, topN, byTotalMs),
		Monthly:            monthlySeries(monthMs),
	}

	totalMinutes := float64(totalMs) / 60000
	if days := len(dayMs); days > 0 {
		result.AvgMinutesPerDay = totalMinutes / float64(days)
	}

	if day, ms, ok := mostActiveDay(dayMs, dayFirstSeen); ok {
		result.MostActiveDay = day
		result.MostActiveDayMin = int(math.Round(float64(ms) / 60000))
	}

	return result
}

// rankMetric orders two accumulators; returns true when a ranks before b.
type rankMetric func(a, b *rankAccumulator) bool

// byTotalMs is the default ranking metric: descending accumulated
// milliseconds, first-seen insertion index on ties.
func byTotalMs(a, b *rankAccumulator) bool {
	if a.ms != b.ms {
		return a.ms > b.ms
	}
	return a.seen < b.seen
}

// byPlayCount is the companion metric: descending play count, first-seen
// insertion index on ties.
func byPlayCount(a, b *rankAccumulator) bool {
	if a.plays != b.plays {
		return a.plays > b.plays
	}
	return a.seen < b.seen
}

// rankTop sorts the accumulators by the given metric and emits the top n
// as ranked entries.
func rankTop(accs map[string]*rankAccumulator, n int, metric rankMetric) []models.RankedEntry {
	sorted := lo.Values(accs)
	sort.Slice(sorted, func(i, j int) bool { return metric(sorted[i], sorted[j]) })

	if len(sorted) > n {
		sorted = sorted[:n]
	}

	out := make([]models.RankedEntry, len(sorted))
	for i, acc := range sorted {
		out[i] = models.RankedEntry{
			Rank:      i + 1,
			Name:      acc.name,
			Artist:    acc.artist,
			PlayCount: acc.plays,
			TotalMs:   acc.ms,
		}
	}
	return out
}

// TopArtistsByPlays returns the artist ranking ordered by play count
// instead of accumulated milliseconds.
func TopArtistsByPlays(entries []models.StreamingEntry, n int) []models.RankedEntry {
	if n <= 0 {
		n = DefaultTopN
	}
	artists := make(map[string]*rankAccumulator)
	for i := range entries {
		e := &entries[i]
		acc, ok := artists[e.ArtistName]
		if !ok {
			acc = &rankAccumulator{name: e.ArtistName, seen: len(artists)}
			artists[e.ArtistName] = acc
		}
		acc.plays++
		acc.ms += e.MsPlayed
	}
	return rankTop(artists, n, byPlayCount)
}

// TopTracksByPlays returns the track ranking ordered by play count.
func TopTracksByPlays(entries []models.StreamingEntry, n int) []models.RankedEntry {
	if n <= 0 {
		n = DefaultTopN
	}
	tracks := make(map[string]*rankAccumulator)
	for i := range entries {
		e := &entries[i]
		key := e.TrackName + "\x00" + e.ArtistName
		acc, ok := tracks[key]
		if !ok {
			acc = &rankAccumulator{name: e.TrackName, artist: e.ArtistName, seen: len(tracks)}
			tracks[key] = acc
		}
		acc.plays++
		acc.ms += e.MsPlayed
	}
	return rankTop(tracks, n, byPlayCount)
}

// monthlySeries converts accumulated per-month milliseconds into the
// sorted trend series. Each month is rounded independently; the ascending
// lexicographic sort over "YYYY-MM" keys is chronological by construction.
func monthlySeries(monthMs map[string]int64) []models.MonthlyMinutes {
	keys := lo.Keys(monthMs)
	sort.Strings(keys)

	out := make([]models.MonthlyMinutes, len(keys))
	for i, key := range keys {
		out[i] = models.MonthlyMinutes{
			Month:   key,
			Minutes: int(math.Round(float64(monthMs[key]) / 60000)),
		}
	}
	return out
}

// mostActiveDay finds the calendar date with the highest summed
// milliseconds. Ties resolve to the date encountered first in the scan,
// which dayFirstSeen makes deterministic for a given input order.
func mostActiveDay(dayMs map[string]int64, dayFirstSeen map[string]int) (string, int64, bool) {
	var (
		bestDay string
		bestMs  int64
		found   bool
	)
	for day, ms := range dayMs {
		switch {
		case !found, ms > bestMs:
		case ms == bestMs && dayFirstSeen[day] < dayFirstSeen[bestDay]:
		default:
			continue
		}
		bestDay, bestMs, found = day, ms, true
	}
	return bestDay, bestMs, found
}

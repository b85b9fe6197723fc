// Replayed - Personal Streaming History Analytics
// Copyright 2026 The Replayed Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/replayed-app/replayed

// Package stats computes aggregate statistics over the canonical event
// list: date-range filtering, ranked top entities, monthly trends, the
// day/hour heatmap, and behavioral pattern splits.
//
// All functions are pure and synchronous. Each call allocates fresh result
// structures; nothing is cached or memoized. Recomputation on every filter
// change is the intended policy - the full event set lives in memory, so a
// fresh pass is cheap and keeps results trivially consistent.
package stats

// Replayed - Personal Streaming History Analytics
// Copyright 2026 The Replayed Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/replayed-app/replayed

// Package ingest turns uploaded export files into the canonical event list.
//
// The pipeline has three stages:
//
//  1. Schema detection: DetectSchema validates a file's records against the
//     two known export shapes (standard and extended). Validation is
//     all-or-nothing across the array; partial conformance fails the match.
//  2. Classification: ClassifyFile wraps detection with the fallback chain
//     used for malformed or ambiguous files - filename heuristics, then a
//     structural sniff of the first record, then a best-effort default of
//     the standard interpretation. No path rejects a file outright.
//  3. Aggregation: Aggregate merges classified files into one canonical
//     []models.StreamingEntry, normalizing extended records and silently
//     dropping non-music content (podcasts, audiobooks) along the way, and
//     derives the covered month range.
//
// No function here performs I/O; results are freshly allocated per call.
// The only side effects are Prometheus exclusion counters.
package ingest

// Replayed - Personal Streaming History Analytics
// Copyright 2026 The Replayed Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/replayed-app/replayed

// Package session holds uploaded exports and their merged event list for
// the lifetime of a dashboard session. Storage is purely in-memory with a
// TTL; nothing survives a restart, by design.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/replayed-app/replayed/internal/ingest"
	"github.com/replayed-app/replayed/internal/metrics"
	"github.com/replayed-app/replayed/internal/models"
)

// ErrNotFound is returned when a session ID is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Session is one dashboard session: the uploaded files, the canonical
// merged event list derived from them, and the covered month range.
// The merged list is rebuilt whenever the file set changes; readers get
// the same immutable slice until then.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu      sync.RWMutex
	files   []models.UploadedFile
	entries []models.StreamingEntry
	dates   *models.DateRange
}

// SetFiles replaces the session's upload batch. A fresh batch replaces
// the previous one rather than merging with it; merging across batches is
// a UI-level decision this store does not make.
func (s *Session) SetFiles(files []models.UploadedFile) {
	entries, dates := ingest.Aggregate(files)
	metrics.RecordsIngested.Add(float64(len(entries)))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = files
	s.entries = entries
	s.dates = dates
}

// Clear removes all uploads and derived data from the session.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = nil
	s.entries = nil
	s.dates = nil
}

// Entries returns the merged canonical event list. The slice is shared
// and must be treated as read-only; entries are immutable once created.
func (s *Session) Entries() []models.StreamingEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries
}

// Files returns the current upload batch.
func (s *Session) Files() []models.UploadedFile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.files
}

// DateRange returns the covered "YYYY-MM" span, nil when no events.
func (s *Session) DateRange() *models.DateRange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dates
}

// Store manages sessions with TTL-based expiry.
type Store struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewStore creates a session store. Sessions idle for ttl are purged on
// the cleanup interval; every read refreshes the TTL.
func NewStore(ttl, cleanupInterval time.Duration) *Store {
	c := gocache.New(ttl, cleanupInterval)
	c.OnEvicted(func(string, any) {
		metrics.ActiveSessions.Dec()
	})
	return &Store{cache: c, ttl: ttl}
}

// Create allocates a new empty session.
func (st *Store) Create() *Session {
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}
	st.cache.Set(s.ID, s, st.ttl)
	metrics.ActiveSessions.Inc()
	return s
}

// Get looks up a session by ID and refreshes its TTL.
func (st *Store) Get(id string) (*Session, error) {
	val, ok := st.cache.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	s, ok := val.(*Session)
	if !ok {
		return nil, ErrNotFound
	}
	// Sliding expiry: any access keeps the session alive.
	st.cache.Set(id, s, st.ttl)
	return s, nil
}

// Delete removes a session immediately.
func (st *Store) Delete(id string) {
	st.cache.Delete(id)
}

// Count returns the number of live sessions.
func (st *Store) Count() int {
	return st.cache.ItemCount()
}

// apps/go-cli/internal/store/memory.go
//
// Archive of published daily solutions.
// Once a date's solution has been served it is recorded here so later
// requests for the same date return the same word, even if the answer list
// is edited in between.
//
// Characteristics of the in-memory implementation:
//   - Entries keyed by date in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Get for a date with no published solution.
var ErrNotFound = errors.New("store: not found")

// Entry is one published daily solution.
type Entry struct {
	Date            string `json:"date"` // YYYY-MM-DD
	WordIndex       int    `json:"wordIndex"`
	Word            string `json:"word"`
	DaysSinceLaunch int    `json:"daysSinceLaunch"`
}

// Archive defines the persistence interface for published solutions.
// Implementations may be backed by memory (this file) or SQLite.
type Archive interface {
	// Get retrieves the entry for date, or ErrNotFound.
	Get(ctx context.Context, date string) (Entry, error)

	// Put records e unless its date is already present; the first write wins.
	Put(ctx context.Context, e Entry) error
}

// memory is an in-memory map-based Archive implementation.
type memory struct {
	mu      sync.RWMutex     // guards entries map
	entries map[string]Entry // keyed by Entry.Date
}

// NewMemory constructs a new in-memory Archive.
func NewMemory() Archive {
	return &memory{entries: make(map[string]Entry)}
}

// Put adds the entry if the date is new.
func (m *memory) Put(ctx context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[e.Date]; !ok {
		m.entries[e.Date] = e
	}
	return nil
}

// Get looks up an entry by date.
func (m *memory) Get(ctx context.Context, date string) (Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[date]; ok {
		return e, nil
	}
	return Entry{}, ErrNotFound
}

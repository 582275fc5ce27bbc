// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dataset

import (
	"sync"
	"time"

	"github.com/danielhkuo/aita-judge/models"
)

// Store holds the current scenario collection. A reload replaces the whole
// collection and bumps the version; old and new datasets are never merged,
// and the version is what ties a submission to the data it judged.
type Store struct {
	mu        sync.RWMutex
	scenarios []models.Scenario
	version   int64
	source    string
	loadedAt  time.Time
	lastErr   error
}

// Snapshot is a read-only view of the store at one version. Scenarios are
// immutable after normalization, so the slice is safe to share.
type Snapshot struct {
	Version   int64
	Source    string
	Scenarios []models.Scenario
	LoadedAt  time.Time
	Err       error
}

// NewStore creates an empty store. initialVersion seeds the version
// counter (from the last persisted dataset load) so versions stay
// monotonic across restarts.
func NewStore(initialVersion int64) *Store {
	return &Store{version: initialVersion}
}

// Replace installs a freshly normalized collection and returns the new
// version. The previous collection is discarded entirely.
func (s *Store) Replace(scenarios []models.Scenario, source string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.version++
	s.scenarios = scenarios
	s.source = source
	s.loadedAt = time.Now().UTC()
	s.lastErr = nil
	return s.version
}

// RecordError remembers a failed load. Any previously loaded collection
// stays in place; the error is only surfaced to clients while the store
// is empty.
func (s *Store) RecordError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
}

// Snapshot returns the current collection and version.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Version:   s.version,
		Source:    s.source,
		Scenarios: s.scenarios,
		LoadedAt:  s.loadedAt,
		Err:       s.lastErr,
	}
}

// Empty reports whether the store has no scenarios loaded.
func (s Snapshot) Empty() bool {
	return len(s.Scenarios) == 0
}

// Find returns the scenario with the given ID.
func (s Snapshot) Find(id string) (models.Scenario, bool) {
	for _, sc := range s.Scenarios {
		if sc.ID == id {
			return sc, true
		}
	}
	return models.Scenario{}, false
}

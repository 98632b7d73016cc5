package game

import (
	"sync"
	"time"

	"github.com/osse101/HeroVerse_Go/internal/domain"
)

// Snapshot is one fetched copy of the owned instances.
// It is never mutated after it is published; callers may read it freely.
type Snapshot struct {
	Instances []domain.OwnedHeroInstance `json:"instances"`
	FetchedAt time.Time                  `json:"fetched_at"`
	Loaded    bool                       `json:"loaded"`
}

// Store holds the latest snapshot. Refresh is the single writer.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// Snapshot returns the current snapshot
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Replace swaps in a freshly fetched collection
func (s *Store) Replace(instances []domain.OwnedHeroInstance, fetchedAt time.Time) {
	owned := make([]domain.OwnedHeroInstance, len(instances))
	copy(owned, instances)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = Snapshot{Instances: owned, FetchedAt: fetchedAt, Loaded: true}
}

// MarkCollected mirrors a confirmed collect into the snapshot: every active
// instance gets its collect anchor moved to at. Used only when the follow-up
// fetch failed, so pending does not show swept earnings again.
func (s *Store) MarkCollected(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.OwnedHeroInstance, len(s.snap.Instances))
	for i, inst := range s.snap.Instances {
		if inst.IsActive {
			anchor := at
			inst.LastCollectedAt = &anchor
		}
		next[i] = inst
	}
	s.snap = Snapshot{Instances: next, FetchedAt: s.snap.FetchedAt, Loaded: s.snap.Loaded}
}

package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/memoix/internal/model"
)

// Snapshot represents the latest record list available to the UI.
type Snapshot struct {
	Records             []model.Record
	Loaded              bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive refresh failures
}

// IsDegraded returns true when the database has failed several refreshes in
// a row. The UI keeps showing the last good list.
func (s Snapshot) IsDegraded() bool {
	return s.ConsecutiveFailures >= 2
}

// Counts returns the number of records per kind.
func (s Snapshot) Counts() map[model.Kind]int {
	counts := make(map[model.Kind]int, len(model.Kinds()))
	for _, r := range s.Records {
		counts[r.Kind()]++
	}
	return counts
}

// Favorites returns how many records are marked favourite.
func (s Snapshot) Favorites() int {
	n := 0
	for _, r := range s.Records {
		if r.Local().Favorite {
			n++
		}
	}
	return n
}

// Filter returns the records of the given kind (all kinds when empty),
// optionally only favourites, in stored order.
func (s Snapshot) Filter(kind model.Kind, favoritesOnly bool) []model.Record {
	var out []model.Record
	for _, r := range s.Records {
		if kind != "" && r.Kind() != kind {
			continue
		}
		if favoritesOnly && !r.Local().Favorite {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Find returns the record with the given uuid.
func (s Snapshot) Find(uuid string) (model.Record, bool) {
	for _, r := range s.Records {
		if r.Ref().UUID == uuid {
			return r, true
		}
	}
	return nil, false
}

// Store coordinates concurrent updates to the snapshot. Records handed to
// Update are treated as read-only from then on.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored list. When err is non-nil the previous list is
// kept but the error is recorded for visibility.
func (s *Store) Update(records []model.Record, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Records = cloneRecords(records)
	s.snapshot.Loaded = true
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Records = cloneRecords(s.snapshot.Records)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneRecords(items []model.Record) []model.Record {
	if len(items) == 0 {
		return nil
	}
	dup := make([]model.Record, len(items))
	copy(dup, items)
	return dup
}

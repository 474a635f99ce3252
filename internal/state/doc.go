// Package state holds the record list shared between the background
// refresher and the UI.
//
// # Overview
//
// The refresher reads the collection from the database on a timer and
// publishes it with Store.Update; the UI reads it with Store.Snapshot on its
// own tick. A readers-writer lock keeps updates atomic and snapshots are
// copies, so neither side sees a torn list.
//
//	Refresher:                     UI:
//	┌────────────────┐            ┌─────────────────┐
//	│ store.List()   │            │                 │
//	│      ↓         │            │                 │
//	│ state.Update() │───────────→│ state.Snapshot()│
//	│      ↓         │  (mutex)   │      ↓          │
//	│  wait/backoff  │            │  render list    │
//	└────────────────┘            └─────────────────┘
//
// # Update Semantics
//
//	// Success: replace the list
//	st.Update(records, nil)
//
//	// Failure: keep the old list, record the error
//	st.Update(nil, err)
//
// ConsecutiveFailures counts failed refreshes since the last success and
// drives both the refresher's backoff and the UI's degraded indicator.
//
// # Queries
//
// Snapshot carries small helpers used by the header and list panes: Counts
// per kind, Favorites, Filter by kind and favourite flag, and Find by uuid.
//
// The zero Store is ready to use.
package state

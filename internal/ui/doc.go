// Package ui is the memoix terminal interface, built on Bubble Tea.
//
// # Layout
//
//	┌ header: logo · totals · favourites · per-kind counts · filter ┐
//	│ command bar: the most used keys                               │
//	├── Collection (n) ──────┬── Details ───────────────────────────┤
//	│ ★ Mustard Air · Modern │ kind · source · short code           │
//	│   Pho · Recipe         │ glamour-rendered recipe text         │
//	└────────────────────────┴──────────────────────────────────────┘
//	  footer: result of the last action, or last refresh time
//
// The list reads state.Snapshot on every tick; the refresher in package app
// keeps that snapshot in step with the database. The UI never reads the
// database directly. Mutations (favourite, mark cooked, import) go through
// small interfaces so tests can drive the model without SQLite.
//
// # Sharing
//
// c copies the share link, y copies the plain-text rendering, s opens the
// share overlay (link, short code, QR fit) and r renders the QR code with
// half-block characters. i opens the import prompt, pre-filled when the
// clipboard holds a share link; the link goes through the deep link
// controller so a link is imported at most once per session and decode
// failures surface as a single user-facing line.
//
// # Activity
//
// l switches to the activity view: the tail of the zap JSON log, one
// formatted line per entry, coloured by level. w narrows it to warnings and
// errors.
//
// # Preferences
//
// Theme (T), kind filter (f) and favourites-only (F) are saved to the
// prefs file as they change.
package ui

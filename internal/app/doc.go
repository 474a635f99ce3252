// Package app is the composition root for memoix.
//
// # Overview
//
// Open loads the config, builds the zap logger, opens the SQLite store and
// wires the share link handler behind the consume-once controller. The TUI
// and every CLI subcommand start from the same Env, so a link imported from
// the command line goes through exactly the same path as one pasted into
// the UI.
//
//	┌──────────────┐
//	│   Open()     │
//	└──────┬───────┘
//	       ├─────> config.Load()        ~/.config/memoix/config.toml
//	       ├─────> logging.New()        JSON lines in the data dir
//	       ├─────> store.Open()         SQLite, WAL mode
//	       └─────> deeplink.NewController(deeplink.NewHandler(store))
//
// Run adds the interactive pieces: it seeds the bundled collection when
// collection_dir is set, starts the Refresher, and blocks in ui.Run.
//
//	Refresher loop:
//	┌─────────────────────────────────────────┐
//	│  store.List()                           │
//	│  state.Update()   (atomic)              │
//	│  wait interval, or backoff on failure,  │
//	│  or wake early on Trigger()             │
//	└─────────────────────────────────────────┘
//
// # Backoff
//
// After a failed refresh the wait doubles per consecutive failure (2s, 4s,
// 8s, 16s) and is capped at 30s. The UI keeps the last good list and shows
// a degraded header once two refreshes in a row have failed.
//
// # Errors
//
// Config, logger and database failures are fatal and returned from Open.
// A collection that fails to seed is logged and skipped. Refresh failures
// are logged and retried.
package app

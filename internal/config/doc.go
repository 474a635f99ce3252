// Package config loads the memoix configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/memoix/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or blank, use defaults
//
// # TOML Format
//
//	data_dir       = "~/.local/share/memoix"
//	db_path        = ""          # default <data_dir>/memoix.db
//	log_file       = ""          # default <data_dir>/memoix.log
//	log_level      = "info"      # debug, info, warn, error
//	on_duplicate   = "skip"      # skip, replace or copy
//	poll_seconds   = 2
//	collection_dir = ""          # official collection files to seed on start
//
// Every field is optional. Tilde expansion is performed on all paths.
//
// # Duplicate Imports
//
// on_duplicate decides what happens when a share link carries a uuid that
// is already in the local collection:
//
//   - skip: keep the local record untouched (default)
//   - replace: overwrite its recipe content but keep favourites, ratings
//     and cook history
//   - copy: store the incoming record as a new one with a fresh uuid
//
// # Error Handling
//
// Load returns errors for unreadable files, invalid TOML and unknown
// on_duplicate values. A missing file is not an error.
package config

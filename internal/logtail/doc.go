// Package logtail reads the tail of the memoix log file for the activity
// view.
//
// # Reading
//
// Read keeps the last maxLines lines in a ring buffer during one sequential
// scan, so memory stays at O(maxLines) however large the file grows. A
// non-positive maxLines returns the whole file. Missing files are not an
// error; the log is created lazily on first write.
//
//	1. Allocate ring buffer of size maxLines
//	2. For each line: store at idx, advance idx modulo maxLines
//	3. If fewer than maxLines were seen, return them as is
//	4. Otherwise return the buffer starting at idx (the oldest line)
//
// # Formatting
//
// The logger writes zap JSON lines. Parse turns one back into an Entry and
// Entry.String renders it the way the activity pane shows it:
//
//	2026-10-19 12:00:05 WARN  [deeplink] share link rejected kind=cheese reason=unknown_kind
//
// Structured fields are sorted by key. Lines that are not JSON objects are
// passed through untouched rather than dropped.
package logtail

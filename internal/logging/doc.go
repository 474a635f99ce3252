// Package logging builds the zap logger shared by the store, the deep link
// handler and the refresher. Output is JSON lines in a file under the data
// directory; the activity view reads it back through logtail.
package logging

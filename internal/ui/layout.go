package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops the
	// per-kind counts.
	LayoutCompactWidth = 100

	// LayoutExtraWideWidth gives the detail pane more room.
	LayoutExtraWideWidth = 160
)

const (
	// ActivityLineLimit is how many log lines the activity view reads.
	ActivityLineLimit = 500

	// DefaultUIInterval is the default snapshot refresh interval.
	DefaultUIInterval = time.Second

	// FlashDuration is how long a status message stays in the footer.
	FlashDuration = 4 * time.Second

	// chrome is the number of rows taken by header, command bar and footer.
	chrome = 3
)

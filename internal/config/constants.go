package config

import "time"

// Timer settings.
const (
	// TickInterval is how often the remaining time is recomputed and
	// redrawn.
	TickInterval = 250 * time.Millisecond
)

// Layout constants.
const (
	// MarginLines is the vertical margin reserved around the banner.
	MarginLines = 2

	// InputBoxHeight is the height of the duration input box, border
	// included.
	InputBoxHeight = 3
)

// Application settings.
const (
	AppName = "bannerdown"

	// InputPlaceholder hints the accepted duration shapes.
	InputPlaceholder = "hh:mm:ss"
)

package ui

import "time"

// Terminal width thresholds for the card grid.
const (
	// LayoutTwoColumnWidth is the minimum width for two card columns.
	LayoutTwoColumnWidth = 80

	// LayoutThreeColumnWidth is the minimum width for three card columns.
	LayoutThreeColumnWidth = 130

	// LayoutCompactWidth is the threshold below which the header drops detail.
	LayoutCompactWidth = 100
)

// Card geometry.
const (
	cardHeight = 5 // border + name + two attribute lines
	cardGap    = 1
)

// Chrome lines: header, command bar, search box, pagination bar, status line.
const chromeHeight = 5

// Activity log view.
const (
	// LogLineLimit is how many lines of the log file the view loads.
	LogLineLimit = 500

	// NoticeTimeout is how long a transient status message stays visible.
	NoticeTimeout = 4 * time.Second
)

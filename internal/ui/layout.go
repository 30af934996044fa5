package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100
)

// Chart geometry.
const (
	// chromeRows is the number of rows used by header, command bar, legend
	// and footer.
	chromeRows = 5

	// minChartRows is the smallest chart area (bars plus labels) rendered.
	minChartRows = 4

	// chartPadding is the number of blank columns left of the first bar.
	chartPadding = 1
)

// Timing constants.
const (
	// DefaultFrameInterval is the default redraw interval.
	DefaultFrameInterval = 33 * time.Millisecond
)

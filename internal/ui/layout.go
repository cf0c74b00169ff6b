package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 80
)

// Grid geometry.
const (
	// TileHeight is the rendered height of one tile including its border.
	TileHeight = 5

	// TileGap is the horizontal space between tiles.
	TileGap = 1

	// chromeHeight covers header (2), controls (2) and command bar (1).
	chromeHeight = 5
)

// Preview limits for the detail view.
const (
	// PreviewMaxRows caps the preview height in cells.
	PreviewMaxRows = 24
)

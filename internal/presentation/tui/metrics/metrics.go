// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	// HeaderBorderWidth is the left plus right border of the header frame.
	HeaderBorderWidth = 2
	// HeaderSafetyPadding keeps the summary clear of the frame edge.
	HeaderSafetyPadding = 2
	// MinSummaryWidth is the floor for the width the summary may use.
	MinSummaryWidth = 20
	// HeaderLines is the rendered height of the header frame.
	HeaderLines = 3

	// TileBorderWidth is the left plus right border of a tile.
	TileBorderWidth = 2
	// TileHeight is the rendered height of a tile row, borders included.
	TileHeight = 3
	// TileGap separates tiles horizontally.
	TileGap = 1
)

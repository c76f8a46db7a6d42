package update

import (
	"github.com/tesso57/numpick/internal/domain/fit"
	"github.com/tesso57/numpick/internal/presentation/tui/components/grid"
	"github.com/tesso57/numpick/internal/presentation/tui/components/header"
	"github.com/tesso57/numpick/internal/presentation/tui/state"
)

// Refit recomputes the header spacing and tile width for the current terminal width.
func Refit(s *state.ModelState) {
	if s.Width <= 0 {
		return
	}
	s.TileWidth = fitTileWidth(s)
	RefitHeader(s)
	s.Fitted = true
}

// RefitHeader picks the widest padding at which the summary still fits the header.
func RefitHeader(s *state.ModelState) {
	if s.Width <= 0 {
		s.HeaderPadding = s.Fit.HeaderMinPadding
		return
	}
	s.HeaderPadding = fit.Fit(
		s.Fit.HeaderMaxPadding,
		s.Fit.HeaderMinPadding,
		header.MeasureFunc(s.Summary),
		header.SummaryWidth(s.Width),
	)
}

func fitTileWidth(s *state.ModelState) int {
	minWidth := max(s.Fit.TileMinWidth, grid.MinTileWidth(s.Tiles))
	maxWidth := max(s.Fit.TileMaxWidth, minWidth)
	return fit.Fit(maxWidth, minWidth, grid.MeasureRow(s.Tiles, s.Columns), s.Width)
}

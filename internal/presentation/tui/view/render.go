// Package view orchestrates the composition of UI components.
package view

import (
	"github.com/tesso57/numpick/internal/presentation/tui/components/grid"
	"github.com/tesso57/numpick/internal/presentation/tui/components/header"
	"github.com/tesso57/numpick/internal/presentation/tui/components/layout"
	"github.com/tesso57/numpick/internal/presentation/tui/components/modal"
)

// Props aggregates properties for all UI components.
type Props struct {
	Header header.Props
	Grid   grid.Props
	Modal  modal.Props
	Footer string
}

// Render renders the complete UI view based on the provided props.
func Render(p Props) string {
	if p.Modal.Visible {
		return modal.Render(p.Modal)
	}

	return layout.Render(layout.Props{
		Header: header.Render(p.Header),
		Grid:   grid.Render(p.Grid),
		Footer: p.Footer,
	})
}

// Package tui provides the main user interface model and view components.
package tui

import (
	"github.com/tesso57/numpick/internal/presentation/tui/components/grid"
	"github.com/tesso57/numpick/internal/presentation/tui/components/header"
	"github.com/tesso57/numpick/internal/presentation/tui/components/modal"
	"github.com/tesso57/numpick/internal/presentation/tui/state"
	"github.com/tesso57/numpick/internal/presentation/tui/view"
)

func (m *Model) buildProps() view.Props {
	return view.Props{
		Header: m.buildHeaderProps(),
		Grid:   m.buildGridProps(),
		Modal:  m.buildModalProps(),
		Footer: m.buildFooterProps(),
	}
}

func (m *Model) buildHeaderProps() header.Props {
	return header.Props{
		Summary:   m.state.Summary,
		Empty:     m.state.Empty,
		Padding:   m.state.HeaderPadding,
		Width:     m.state.Width,
		Glow:      m.state.Glow,
		Accent:    m.state.Theme.Accent,
		Highlight: m.state.Theme.Active,
		Muted:     m.state.Theme.Muted,
	}
}

func (m *Model) buildGridProps() grid.Props {
	return grid.Props{
		Tiles:     m.state.Tiles,
		Columns:   m.state.Columns,
		Cursor:    m.state.Cursor,
		Selected:  m.state.Selection.Contains,
		TileWidth: m.state.TileWidth,
		Active:    m.state.Theme.Active,
		Inactive:  m.state.Theme.Inactive,
		Accent:    m.state.Theme.Accent,
	}
}

func (m *Model) buildModalProps() modal.Props {
	switch m.state.Session {
	case state.QuitView:
		return modal.Props{
			Visible: true,
			Kind:    modal.Quit,
			Body:    "Are you sure you want to quit?\n\n(y/n)",
			Width:   m.state.Width,
			Height:  m.state.Height,
			Accent:  m.state.Theme.Accent,
			Warning: m.state.Theme.Active,
		}
	case state.HelpView:
		return modal.Props{
			Visible: true,
			Kind:    modal.Help,
			Body:    m.state.Help.FullHelpView(m.state.Keys.FullHelp()),
			Width:   m.state.Width,
			Height:  m.state.Height,
			Accent:  m.state.Theme.Accent,
		}
	}
	return modal.Props{Visible: false}
}

func (m *Model) buildFooterProps() string {
	helpText := state.FooterHelpText(m.state.Help, m.state.Keys)
	return state.FooterText(m.picker.CountText(m.state.Selection), m.state.StatusMessage, helpText)
}

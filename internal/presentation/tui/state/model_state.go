package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/tesso57/numpick/internal/application/settings"
	"github.com/tesso57/numpick/internal/domain/selection"
	"github.com/tesso57/numpick/internal/presentation/tui/debounce"
)

// Theme holds the lipgloss colors used by the components.
type Theme struct {
	Active   string
	Inactive string
	Accent   string
	Muted    string
}

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Session   Session
	Previous  Session
	Selection *selection.Set
	Tiles     int
	Columns   int
	Cursor    int // zero-based tile index
	Keys      KeyMap
	Help      help.Model
	Theme     Theme
	Fit       settings.FitConfig
	Width     int
	Height    int

	// Summary is the header text for the current selection; Empty marks the placeholder.
	Summary string
	Empty   bool

	// Fitted layout, recomputed by update.Refit.
	HeaderPadding int
	TileWidth     int
	Fitted        bool

	// Glow is the one-shot header highlight after a tile turns on.
	Glow          bool
	StatusMessage string
	LastExport    string

	Resize     *debounce.Timer
	GlowTimer  *debounce.Timer
	StatusTime *debounce.Timer
}

// TileValue returns the number shown on the tile at index.
func (s *ModelState) TileValue(index int) int {
	return index + 1
}

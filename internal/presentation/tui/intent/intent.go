// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/numpick/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ToggleHelp
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	Toggle
	Clear
	Copy
	Export
	OpenCard
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
}

// FromKeyMsg maps a key message to an intent.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.Up):
		return Intent{Type: MoveUp}
	case key.Matches(msg, keys.Down):
		return Intent{Type: MoveDown}
	case key.Matches(msg, keys.Left):
		return Intent{Type: MoveLeft}
	case key.Matches(msg, keys.Right):
		return Intent{Type: MoveRight}
	case key.Matches(msg, keys.Toggle):
		return Intent{Type: Toggle}
	case key.Matches(msg, keys.Clear):
		return Intent{Type: Clear}
	case key.Matches(msg, keys.Copy):
		return Intent{Type: Copy}
	case key.Matches(msg, keys.Export):
		return Intent{Type: Export}
	case key.Matches(msg, keys.Open):
		return Intent{Type: OpenCard}
	default:
		return Intent{Type: None}
	}
}

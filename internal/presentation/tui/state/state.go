// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/numpick/internal/application/settings"
)

// Session represents the current view state.
type Session int

const (
	PickerView Session = iota
	HelpView
	QuitView
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Clear  key.Binding
	Copy   key.Binding
	Export key.Binding
	Open   key.Binding
	Quit   key.Binding
	Help   key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Copy, k.Clear, k.Help, k.Quit}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.Clear},
		{k.Copy, k.Export, k.Open},
		{k.Help, k.Quit},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Up)...),
			key.WithHelp(cfg.Up, "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Down)...),
			key.WithHelp(cfg.Down, "down"),
		),
		Left: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Left)...),
			key.WithHelp(cfg.Left, "left"),
		),
		Right: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Right)...),
			key.WithHelp(cfg.Right, "right"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Toggle)...),
			key.WithHelp(cfg.Toggle, "toggle"),
		),
		Clear: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Clear)...),
			key.WithHelp(cfg.Clear, "clear"),
		),
		Copy: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Copy)...),
			key.WithHelp(cfg.Copy, "copy"),
		),
		Export: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Export)...),
			key.WithHelp(cfg.Export, "export card"),
		),
		Open: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Open)...),
			key.WithHelp(cfg.Open, "open card"),
		),
		Quit: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Quit)...),
			key.WithHelp(cfg.Quit, "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		switch keyName {
		case "space":
			// bubbletea reports the space bar as a literal space.
			out = append(out, " ")
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
		out = append(out, keyName)
	}
	return out
}

// Package update holds UI update logic for the TUI.
package update

import (
	"errors"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/numpick/internal/application/usecase"
	"github.com/tesso57/numpick/internal/domain/selection"
	"github.com/tesso57/numpick/internal/presentation/tui/components/grid"
	"github.com/tesso57/numpick/internal/presentation/tui/debounce"
	"github.com/tesso57/numpick/internal/presentation/tui/intent"
	"github.com/tesso57/numpick/internal/presentation/tui/metrics"
	"github.com/tesso57/numpick/internal/presentation/tui/state"
)

const (
	// GlowDuration is the default delay of the glow timer.
	GlowDuration = time.Second
	// WarningDuration is how long the empty-copy warning stays visible.
	WarningDuration = time.Second
	// NoticeDuration is how long export and failure messages stay visible.
	NoticeDuration = 4 * time.Second
)

// Deps groups external dependencies for updates.
type Deps struct {
	Picker   usecase.PickerService
	OpenFile func(string) error
}

// CopiedMsg is emitted after the summary was written to the clipboard.
type CopiedMsg struct {
	Text string
	Err  error
}

// ExportedMsg is emitted after a selection card was rendered.
type ExportedMsg struct {
	Export usecase.Export
	Err    error
}

// CopyCmd creates a command that copies the current selection.
func CopyCmd(picker usecase.PickerService, set *selection.Set) tea.Cmd {
	snapshot := selection.NewSet(set.Sorted()...)
	return func() tea.Msg {
		text, err := picker.Copy(snapshot)
		return CopiedMsg{Text: text, Err: err}
	}
}

// ExportCmd creates a command that renders the current selection to a card.
func ExportCmd(picker usecase.PickerService, set *selection.Set) tea.Cmd {
	snapshot := selection.NewSet(set.Sorted()...)
	return func() tea.Msg {
		export, err := picker.Export(snapshot, "")
		return ExportedMsg{Export: export, Err: err}
	}
}

// HandleKeyMsg processes key input based on the current session.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit, true
	}
	switch s.Session {
	case state.QuitView:
		return handleQuitView(s, msg)
	case state.HelpView:
		s.Session = state.PickerView
		return nil, true
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	if parsed.Type == intent.None {
		return nil, handleNumberJump(s, msg)
	}
	return handlePickerIntent(s, parsed, deps)
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Session = s.Previous
		return nil, true
	}
	return nil, true
}

func handleNumberJump(s *state.ModelState, msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return false
	}
	index := int(r - '1')
	if index >= s.Tiles {
		return false
	}
	s.Cursor = index
	return true
}

func handlePickerIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Quit:
		s.Previous = s.Session
		s.Session = state.QuitView
	case intent.ToggleHelp:
		s.Previous = s.Session
		s.Session = state.HelpView
	case intent.MoveUp:
		moveCursor(s, -s.Columns)
	case intent.MoveDown:
		moveCursor(s, s.Columns)
	case intent.MoveLeft:
		moveCursor(s, -1)
	case intent.MoveRight:
		moveCursor(s, 1)
	case intent.Toggle:
		return ToggleTile(s, s.Cursor, deps), true
	case intent.Clear:
		s.Selection.Clear()
		s.Glow = false
		s.GlowTimer.Stop()
		SyncSummary(s, deps)
	case intent.Copy:
		return startCopy(s, deps), true
	case intent.Export:
		if s.Selection.Len() == 0 {
			return setStatus(s, usecase.CopyWarning, WarningDuration), true
		}
		return ExportCmd(deps.Picker, s.Selection), true
	case intent.OpenCard:
		return openLastExport(s, deps), true
	default:
		return nil, false
	}
	return nil, true
}

func moveCursor(s *state.ModelState, delta int) {
	next := s.Cursor + delta
	if next < 0 || next >= s.Tiles {
		return
	}
	s.Cursor = next
}

// ToggleTile flips the tile at index and refreshes the summary.
func ToggleTile(s *state.ModelState, index int, deps Deps) tea.Cmd {
	if index < 0 || index >= s.Tiles {
		return nil
	}
	s.Cursor = index
	on := s.Selection.Toggle(s.TileValue(index))
	SyncSummary(s, deps)
	if !on {
		return nil
	}
	s.Glow = true
	return s.GlowTimer.Trigger()
}

func startCopy(s *state.ModelState, deps Deps) tea.Cmd {
	if s.Selection.Len() == 0 {
		return setStatus(s, usecase.CopyWarning, WarningDuration)
	}
	return CopyCmd(deps.Picker, s.Selection)
}

func openLastExport(s *state.ModelState, deps Deps) tea.Cmd {
	if s.LastExport == "" || deps.OpenFile == nil {
		return nil
	}
	if err := deps.OpenFile(s.LastExport); err != nil {
		log.Printf("open %s: %v", s.LastExport, err)
		return setStatus(s, fmt.Sprintf("Open failed: %v", err), NoticeDuration)
	}
	return nil
}

func setStatus(s *state.ModelState, message string, d time.Duration) tea.Cmd {
	s.StatusMessage = message
	return s.StatusTime.TriggerAfter(d)
}

// SyncSummary recomputes the header text for the current selection and refits it.
func SyncSummary(s *state.ModelState, deps Deps) {
	s.Summary = deps.Picker.Summary(s.Selection)
	s.Empty = s.Selection.Len() == 0
	RefitHeader(s)
}

// HandleWindowSize stores the terminal size and schedules a refit.
// The first size is fitted immediately.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) tea.Cmd {
	s.Width = msg.Width
	s.Height = msg.Height
	s.Help.Width = msg.Width
	if !s.Fitted {
		Refit(s)
		return nil
	}
	return s.Resize.Trigger()
}

// HandleFiredMsg applies an elapsed debounce timer. It reports false for stale messages.
func HandleFiredMsg(s *state.ModelState, msg debounce.FiredMsg) bool {
	switch {
	case s.Resize.Fired(msg):
		Refit(s)
	case s.GlowTimer.Fired(msg):
		s.Glow = false
	case s.StatusTime.Fired(msg):
		s.StatusMessage = ""
	default:
		return false
	}
	return true
}

// HandleMouseMsg toggles a clicked tile; a click on the header copies the summary.
func HandleMouseMsg(s *state.ModelState, msg tea.MouseMsg, deps Deps) (tea.Cmd, bool) {
	if s.Session != state.PickerView {
		return nil, false
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil, false
	}
	if msg.Y < metrics.HeaderLines {
		return startCopy(s, deps), true
	}
	index, ok := grid.HitTest(grid.Props{
		Tiles:     s.Tiles,
		Columns:   s.Columns,
		TileWidth: s.TileWidth,
	}, msg.X, msg.Y-metrics.HeaderLines)
	if !ok {
		return nil, false
	}
	return ToggleTile(s, index, deps), true
}

// HandleCopiedMsg reports a failed copy. A successful copy is silent.
func HandleCopiedMsg(s *state.ModelState, msg CopiedMsg) tea.Cmd {
	if msg.Err == nil {
		return nil
	}
	if errors.Is(msg.Err, usecase.ErrNothingToCopy) {
		return setStatus(s, usecase.CopyWarning, WarningDuration)
	}
	log.Printf("copy: %v", msg.Err)
	return setStatus(s, fmt.Sprintf("Copy failed: %v", msg.Err), NoticeDuration)
}

// HandleExportedMsg reports where a card was written.
func HandleExportedMsg(s *state.ModelState, msg ExportedMsg) tea.Cmd {
	if msg.Err != nil {
		if errors.Is(msg.Err, usecase.ErrNothingToCopy) {
			return setStatus(s, usecase.CopyWarning, WarningDuration)
		}
		log.Printf("export: %v", msg.Err)
		return setStatus(s, fmt.Sprintf("Export failed: %v", msg.Err), NoticeDuration)
	}
	s.LastExport = msg.Export.Path
	return setStatus(s, fmt.Sprintf("Saved %s (%dpt)", msg.Export.Path, msg.Export.FontSize), NoticeDuration)
}

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/numpick/internal/application/settings"
	"github.com/tesso57/numpick/internal/application/usecase"
	"github.com/tesso57/numpick/internal/domain/selection"
	"github.com/tesso57/numpick/internal/presentation/tui/debounce"
	"github.com/tesso57/numpick/internal/presentation/tui/state"
	"github.com/tesso57/numpick/internal/presentation/tui/update"
	"github.com/tesso57/numpick/internal/presentation/tui/view"
)

// Model represents the main application state.
type Model struct {
	settings settings.Settings
	picker   usecase.PickerService
	state    *state.ModelState
}

// NewModel creates a new application model.
func NewModel(cfg settings.Settings, picker usecase.PickerService) *Model {
	m := &Model{
		settings: cfg,
		picker:   picker,
		state:    newModelState(cfg),
	}
	update.SyncSummary(m.state, m.deps())
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, _ := update.HandleKeyMsg(m.state, msg, m.deps())
		return m, cmd
	case tea.MouseMsg:
		cmd, _ := update.HandleMouseMsg(m.state, msg, m.deps())
		return m, cmd
	case tea.WindowSizeMsg:
		return m, update.HandleWindowSize(m.state, msg)
	case debounce.FiredMsg:
		update.HandleFiredMsg(m.state, msg)
	case update.CopiedMsg:
		return m, update.HandleCopiedMsg(m.state, msg)
	case update.ExportedMsg:
		return m, update.HandleExportedMsg(m.state, msg)
	}
	return m, nil
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

// Selection returns the values currently selected, ascending.
func (m *Model) Selection() []int {
	return m.state.Selection.Sorted()
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Picker:   m.picker,
		OpenFile: openFile,
	}
}

func newModelState(cfg settings.Settings) *state.ModelState {
	return &state.ModelState{
		Session:   state.PickerView,
		Selection: selection.NewSet(),
		Tiles:     cfg.TileCount(),
		Columns:   cfg.ColumnCount(),
		Keys:      state.NewKeyMap(cfg.KeyMap),
		Help:      help.New(),
		Theme: state.Theme{
			Active:   cfg.Theme.Active,
			Inactive: cfg.Theme.Inactive,
			Accent:   cfg.Theme.Accent,
			Muted:    cfg.Theme.Muted,
		},
		Fit:        cfg.Fit,
		TileWidth:  max(cfg.Fit.TileMaxWidth, 1),
		Resize:     debounce.New(cfg.ResizeDebounce()),
		GlowTimer:  debounce.New(update.GlowDuration),
		StatusTime: debounce.New(update.WarningDuration),
	}
}

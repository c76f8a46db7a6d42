package tui

import (
	"errors"
	"os/exec"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/numpick/internal/application/usecase"
	"github.com/tesso57/numpick/internal/presentation/tui/debounce"
	"github.com/tesso57/numpick/internal/presentation/tui/state"
	"github.com/tesso57/numpick/internal/presentation/tui/update"
)

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m *Model, msg tea.Msg) (*Model, tea.Cmd) {
	t.Helper()
	tm, cmd := m.Update(msg)
	return tm.(*Model), cmd
}

func TestNewModel(t *testing.T) {
	m := newTestModel(testSettings(), &stubClipboard{}, &stubCards{})

	assert.Equal(t, state.PickerView, m.state.Session)
	assert.Equal(t, 25, m.state.Tiles)
	assert.Equal(t, 5, m.state.Columns)
	assert.Equal(t, usecase.EmptySummary, m.state.Summary)
	assert.True(t, m.state.Empty)
	assert.Nil(t, m.Init())
}

func TestNewModel_ClampsGrid(t *testing.T) {
	cfg := testSettings()
	cfg.Grid.Tiles = 3
	cfg.Grid.Columns = 10
	m := newTestModel(cfg, &stubClipboard{}, &stubCards{})

	assert.Equal(t, 3, m.state.Tiles)
	assert.Equal(t, 3, m.state.Columns)
}

func TestView_BeforeAndAfterResize(t *testing.T) {
	m := newTestModel(testSettings(), &stubClipboard{}, &stubCards{})

	got := m.View()
	assert.Contains(t, got, usecase.EmptySummary)
	assert.Contains(t, got, "Processed: 0")
	assert.Contains(t, got, "25")

	m, cmd := send(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})
	assert.Nil(t, cmd)
	got = m.View()
	assert.LessOrEqual(t, lipgloss.Width(got), 60)
}

func TestUpdate_SelectionFlow(t *testing.T) {
	m := newTestModel(testSettings(), &stubClipboard{}, &stubCards{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})

	for _, n := range []string{"1", "2", "3", "5", "6", "9"} {
		m, _ = send(t, m, key(n))
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	}

	assert.Equal(t, []int{1, 2, 3, 5, 6, 9}, m.Selection())
	view := m.View()
	headerLines := strings.Split(view, "\n")[:3]
	assert.Contains(t, strings.Join(headerLines, "\n"), "1-3, 5-6, 9")
	assert.Contains(t, view, "Processed: 6")
	assert.True(t, m.state.Glow)

	m, _ = send(t, m, key("c"))
	assert.Empty(t, m.Selection())
	assert.Contains(t, m.View(), usecase.EmptySummary)
}

func TestUpdate_Copy(t *testing.T) {
	clip := &stubClipboard{}
	clip.On("WriteText", "Processed: 1-2").Return(nil).Once()
	m := newTestModel(testSettings(), clip, &stubCards{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, key("l"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, cmd := send(t, m, key("y"))
	require.NotNil(t, cmd)

	msg := cmd()
	copied, ok := msg.(update.CopiedMsg)
	require.True(t, ok)
	assert.Equal(t, "Processed: 1-2", copied.Text)

	m, cmd = send(t, m, msg)
	assert.Nil(t, cmd)
	assert.Empty(t, m.state.StatusMessage)
	clip.AssertExpectations(t)
}

func TestUpdate_CopyFailureIsReported(t *testing.T) {
	clip := &stubClipboard{}
	clip.On("WriteText", mock.Anything).Return(errors.New("clipboard unavailable"))
	m := newTestModel(testSettings(), clip, &stubCards{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	_, cmd := send(t, m, key("y"))
	m, _ = send(t, m, cmd())

	assert.Contains(t, m.state.StatusMessage, "clipboard unavailable")
	assert.Contains(t, m.View(), "clipboard unavailable")
}

func TestUpdate_EmptyCopyWarningExpires(t *testing.T) {
	m := newTestModel(testSettings(), &stubClipboard{}, &stubCards{})

	m, cmd := send(t, m, key("y"))
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), usecase.CopyWarning)

	fired, ok := cmd().(debounce.FiredMsg)
	require.True(t, ok)
	m, _ = send(t, m, fired)
	assert.NotContains(t, m.View(), usecase.CopyWarning)
}

func TestUpdate_ExportCard(t *testing.T) {
	cards := &stubCards{}
	cards.On("RenderCard", "4", "cards/selection-test.pdf").Return(24, nil).Once()
	m := newTestModel(testSettings(), &stubClipboard{}, cards)

	m, _ = send(t, m, key("4"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	_, cmd := send(t, m, key("e"))
	require.NotNil(t, cmd)

	m, _ = send(t, m, cmd())
	assert.Equal(t, "cards/selection-test.pdf", m.state.LastExport)
	assert.Contains(t, m.View(), "Saved cards/selection-test.pdf (24pt)")
	cards.AssertExpectations(t)
}

func TestUpdate_HelpModal(t *testing.T) {
	m := newTestModel(testSettings(), &stubClipboard{}, &stubCards{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 160, Height: 30})

	m, _ = send(t, m, key("?"))
	assert.Equal(t, state.HelpView, m.state.Session)
	assert.Contains(t, m.View(), "export card")

	m, _ = send(t, m, key("?"))
	assert.Equal(t, state.PickerView, m.state.Session)
}

func TestUpdate_MouseToggle(t *testing.T) {
	m := newTestModel(testSettings(), &stubClipboard{}, &stubCards{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 200, Height: 30})

	m, _ = send(t, m, tea.MouseMsg{X: 1, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, []int{1}, m.Selection())
}

func TestUpdate_ResizeIsDebounced(t *testing.T) {
	cfg := testSettings()
	cfg.ResizeDebounceMS = 0
	m := newTestModel(cfg, &stubClipboard{}, &stubCards{})

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 200, Height: 30})
	require.Equal(t, 9, m.state.TileWidth)

	m, cmd := send(t, m, tea.WindowSizeMsg{Width: 40, Height: 30})
	require.NotNil(t, cmd)
	assert.Equal(t, 9, m.state.TileWidth)

	m, _ = send(t, m, cmd())
	assert.Equal(t, 7, m.state.TileWidth)
}

func TestOpenFile(t *testing.T) {
	oldOpen := OSOpenCmd
	defer func() { OSOpenCmd = oldOpen }()

	called := ""
	OSOpenCmd = func(path string) *exec.Cmd {
		called = path
		return exec.Command("echo", "mock")
	}

	if err := openFile("card.pdf"); err != nil {
		t.Errorf("openFile failed: %v", err)
	}
	if called != "card.pdf" {
		t.Errorf("OSOpenCmd called with %q", called)
	}

	OSOpenCmd = func(_ string) *exec.Cmd {
		return nil
	}
	if err := openFile("card.pdf"); err == nil {
		t.Error("Expected error for unsupported platform")
	}
}

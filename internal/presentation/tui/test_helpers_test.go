package tui

import (
	"github.com/stretchr/testify/mock"
	"github.com/tesso57/numpick/internal/application/settings"
	"github.com/tesso57/numpick/internal/application/usecase"
)

type stubClipboard struct {
	mock.Mock
	written []string
}

func (s *stubClipboard) WriteText(text string) error {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(text)
		return args.Error(0)
	}
	s.written = append(s.written, text)
	return nil
}

type stubCards struct {
	mock.Mock
}

func (s *stubCards) RenderCard(summary, path string) (int, error) {
	args := s.Called(summary, path)
	return args.Int(0), args.Error(1)
}

func testSettings() settings.Settings {
	return settings.Settings{
		Grid: settings.GridConfig{Tiles: 25, Columns: 5},
		Fit: settings.FitConfig{
			HeaderMinPadding: 1,
			HeaderMaxPadding: 4,
			TileMinWidth:     4,
			TileMaxWidth:     9,
		},
		KeyMap: settings.KeyMapConfig{
			Up: "k,up", Down: "j,down", Left: "h,left", Right: "l,right",
			Toggle: "space,enter", Clear: "c", Copy: "y", Export: "e", Open: "o", Quit: "q",
		},
		Theme: settings.ThemeConfig{
			Active: "205", Inactive: "240", Accent: "63", Muted: "244",
		},
	}
}

func newTestModel(cfg settings.Settings, clip usecase.Clipboard, cards usecase.CardRenderer) *Model {
	picker := usecase.NewPickerService(clip, cards, "cards")
	picker.NewID = func() string { return "test" }
	return NewModel(cfg, picker)
}

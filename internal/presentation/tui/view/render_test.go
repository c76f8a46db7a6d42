package view

import (
	"strings"
	"testing"

	"github.com/tesso57/numpick/internal/presentation/tui/components/grid"
	"github.com/tesso57/numpick/internal/presentation/tui/components/header"
	"github.com/tesso57/numpick/internal/presentation/tui/components/modal"
)

func TestRender(t *testing.T) {
	p := Props{
		Header: header.Props{Summary: "1-3, 5", Width: 60},
		Grid:   grid.Props{Tiles: 6, Columns: 3, TileWidth: 4, Cursor: 0},
		Footer: "Processed: 4",
	}

	got := Render(p)
	for _, want := range []string{"1-3, 5", "6", "Processed: 4"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
}

func TestRender_ModalHidesPicker(t *testing.T) {
	p := Props{
		Header: header.Props{Summary: "1-3"},
		Grid:   grid.Props{Tiles: 3, Columns: 3, TileWidth: 4},
		Modal:  modal.Props{Visible: true, Kind: modal.Help, Body: "HELP", Width: 40, Height: 10},
	}

	got := Render(p)
	if !strings.Contains(got, "HELP") {
		t.Fatal("modal body missing")
	}
	if strings.Contains(got, "1-3") {
		t.Error("picker should not render under the modal")
	}
}

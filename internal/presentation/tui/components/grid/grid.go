// Package grid provides the numbered tile grid component.
package grid

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/numpick/internal/presentation/tui/metrics"
)

// Props defines the properties for the grid component.
type Props struct {
	Tiles     int
	Columns   int
	Cursor    int
	Selected  func(value int) bool
	TileWidth int
	Active    string
	Inactive  string
	Accent    string
}

// MinTileWidth returns the narrowest tile that still shows the largest number.
func MinTileWidth(tiles int) int {
	return len(strconv.Itoa(max(tiles, 1))) + metrics.TileBorderWidth
}

// MeasureRow returns the rendered width of a full row of columns tiles at each tile width.
func MeasureRow(tiles, columns int) func(tileWidth int) int {
	return func(tileWidth int) int {
		p := Props{Tiles: tiles, Columns: columns, Cursor: -1, TileWidth: tileWidth}
		cells := make([]string, 0, columns)
		for i := 0; i < columns; i++ {
			cells = append(cells, p.tile(i))
		}
		return lipgloss.Width(joinRow(cells))
	}
}

// Render renders the grid component.
func Render(p Props) string {
	if p.Tiles <= 0 {
		return ""
	}
	cols := max(p.Columns, 1)
	rows := make([]string, 0, (p.Tiles+cols-1)/cols)
	for start := 0; start < p.Tiles; start += cols {
		end := min(start+cols, p.Tiles)
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, p.tile(i))
		}
		rows = append(rows, joinRow(cells))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// HitTest maps a cell position relative to the grid's top-left corner to a tile index.
func HitTest(p Props, x, y int) (int, bool) {
	if x < 0 || y < 0 || p.TileWidth <= 0 {
		return 0, false
	}
	cols := max(p.Columns, 1)
	stride := p.TileWidth + metrics.TileGap
	if x%stride >= p.TileWidth {
		return 0, false
	}
	col := x / stride
	row := y / metrics.TileHeight
	if col >= cols {
		return 0, false
	}
	index := row*cols + col
	if index >= p.Tiles {
		return 0, false
	}
	return index, true
}

func (p Props) tile(index int) string {
	value := index + 1
	selected := p.Selected != nil && p.Selected(value)

	style := lipgloss.NewStyle().
		Width(max(p.TileWidth-metrics.TileBorderWidth, 1)).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Inactive))

	if selected {
		style = style.
			Bold(true).
			Foreground(lipgloss.Color(p.Active)).
			BorderForeground(lipgloss.Color(p.Active))
	}
	if index == p.Cursor {
		style = style.
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(p.Accent))
	}
	return style.Render(strconv.Itoa(value))
}

func joinRow(cells []string) string {
	if len(cells) == 0 {
		return ""
	}
	gap := strings.Repeat(" ", metrics.TileGap)
	parts := make([]string, 0, len(cells)*2-1)
	for i, cell := range cells {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, cell)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

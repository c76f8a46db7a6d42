// Package header provides the selection summary header component.
package header

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/numpick/internal/presentation/tui/metrics"
	"github.com/tesso57/numpick/internal/presentation/tui/textutil"
)

// Props defines the properties for the header component.
type Props struct {
	Summary string
	// Empty marks Summary as the placeholder text.
	Empty bool
	// Padding is the blank cells on each side of the summary.
	Padding int
	// Width is the full width available to the header frame; zero renders unframed width.
	Width     int
	Glow      bool
	Accent    string
	Highlight string
	Muted     string
}

// SummaryWidth returns the cells available to the padded summary inside a frame of width.
func SummaryWidth(width int) int {
	return max(metrics.MinSummaryWidth, width-metrics.HeaderBorderWidth-metrics.HeaderSafetyPadding)
}

// MeasureFunc returns the width of summary with padding cells on both sides.
func MeasureFunc(summary string) func(padding int) int {
	width := lipgloss.Width(textutil.SingleLine(summary))
	return func(padding int) int {
		return width + 2*padding
	}
}

// Render renders the header component.
func Render(p Props) string {
	text := textutil.SingleLine(p.Summary)
	padding := max(p.Padding, 0)
	textStyle := lipgloss.NewStyle().Bold(true)
	borderColor := lipgloss.Color(p.Muted)
	border := lipgloss.RoundedBorder()

	switch {
	case p.Empty:
		textStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(p.Muted))
	case p.Glow:
		borderColor = lipgloss.Color(p.Highlight)
		border = lipgloss.ThickBorder()
	default:
		borderColor = lipgloss.Color(p.Accent)
	}

	frame := lipgloss.NewStyle().
		Border(border).
		BorderForeground(borderColor)

	if p.Width > 0 {
		inner := max(p.Width-metrics.HeaderBorderWidth, 1)
		if inner-2*padding < 1 {
			padding = 0
		}
		// Even the smallest padding may not fit; keep one line.
		if limit := inner - 2*padding; lipgloss.Width(text) > limit {
			text = textutil.Truncate(text, limit)
		}
		frame = frame.Width(inner)
	}
	return frame.Padding(0, padding).Render(textStyle.Render(text))
}

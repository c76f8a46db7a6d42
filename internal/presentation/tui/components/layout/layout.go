// Package layout provides the main layout component.
package layout

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the layout component.
type Props struct {
	Header string
	Grid   string
	Footer string
}

// Render renders the layout component.
func Render(p Props) string {
	parts := []string{p.Header, p.Grid}
	if p.Footer != "" {
		parts = append(parts, p.Footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

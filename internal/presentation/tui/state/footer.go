package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
)

// FooterText returns the footer content: the counter line, an optional status
// message and the key help.
func FooterText(count, status, helpText string) string {
	lines := make([]string, 0, 3)
	if count != "" {
		lines = append(lines, count)
	}
	if s := strings.TrimSpace(status); s != "" {
		lines = append(lines, s)
	}
	if helpText != "" {
		lines = append(lines, helpText)
	}
	return strings.Join(lines, "\n")
}

// FooterHelpText renders the short help line for keys.
func FooterHelpText(h help.Model, keys KeyMap) string {
	return h.ShortHelpView(keys.ShortHelp())
}

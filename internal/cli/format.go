package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// padRight pads s to a display width, counting wide and combining runes properly
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func padLeft(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}

package tui

import (
	"strings"

	"github.com/andy/pizzabill/internal/export"
	"github.com/charmbracelet/lipgloss"
)

// formatMoney formats an amount the way invoices show it, e.g. "86000៛"
func formatMoney(amount float64, currency string) string {
	return export.FormatAmount(amount) + currency
}

// padRight pads s to the given display width
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// padLeft right-aligns s within the given display width
func padLeft(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}

// truncateStr truncates a string to the specified number of runes with ellipsis
func truncateStr(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

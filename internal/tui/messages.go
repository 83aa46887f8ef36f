package tui

import "github.com/andy/pizzabill/internal/export"

// RefreshDataMsg requests data refresh
type RefreshDataMsg struct{}

// shareDoneMsg reports how the invoice text left the program
type shareDoneMsg struct {
	result export.ShareResult
	err    error
}

// printDoneMsg reports where the printable invoice was written
type printDoneMsg struct {
	path string
	err  error
}

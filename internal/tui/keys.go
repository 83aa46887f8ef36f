package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit key.Binding
	Back key.Binding

	// Navigation
	Prices  key.Binding
	Invoice key.Binding

	// Actions
	Select   key.Binding
	Reset    key.Binding
	Plus     key.Binding
	Minus    key.Binding
	Customer key.Binding
	Preview  key.Binding
	Share    key.Binding
	Print    key.Binding
	Save     key.Binding

	// Movement
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
}

var DefaultKeyMap = KeyMap{
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	Prices:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "prices")),
	Invoice:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "invoice")),
	Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
	Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset prices")),
	Plus:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "add one")),
	Minus:    key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "remove one")),
	Customer: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "customer")),
	Preview:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preview")),
	Share:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "share")),
	Print:    key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "print")),
	Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
}

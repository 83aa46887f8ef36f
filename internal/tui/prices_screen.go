package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/andy/pizzabill/internal/app"
	"github.com/andy/pizzabill/internal/domain"
	"github.com/andy/pizzabill/internal/export"
	"github.com/andy/pizzabill/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PricesModel lists the ingredient prices and edits them inline
type PricesModel struct {
	ctx       context.Context
	app       *app.App
	catalog   domain.Catalog
	cursor    int
	statusMsg string

	// Edit state
	editing bool
	input   textinput.Model
}

// NewPricesModel creates a new prices screen model
func NewPricesModel(ctx context.Context, a *app.App) tea.Model {
	m := &PricesModel{ctx: ctx, app: a, catalog: a.Catalog.Current()}
	a.Catalog.SetNotifier(service.NotifierFunc(func(msg string) {
		m.statusMsg = msg
	}))
	return m
}

// IsCapturingInput returns true while a price is being typed
func (m *PricesModel) IsCapturingInput() bool {
	return m.editing
}

func (m *PricesModel) Init() tea.Cmd {
	return nil
}

// reload picks up prices saved by other processes in the same session
func (m *PricesModel) reload() {
	m.catalog = m.app.Catalog.Reload(m.ctx)
	if m.cursor >= len(m.catalog) {
		m.cursor = max(0, len(m.catalog)-1)
	}
}

func (m *PricesModel) startEdit() tea.Cmd {
	ing := m.catalog[m.cursor]

	m.input = textinput.New()
	m.input.Placeholder = "0"
	m.input.CharLimit = 12
	m.input.Width = 14
	m.input.SetValue(export.FormatAmount(ing.Price))
	m.editing = true
	return m.input.Focus()
}

func (m *PricesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.updateEdit(msg)
	}

	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.reload()
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""

		switch {
		case key.Matches(msg, DefaultKeyMap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, DefaultKeyMap.Down):
			if m.cursor < len(m.catalog)-1 {
				m.cursor++
			}
		case key.Matches(msg, DefaultKeyMap.Select):
			if len(m.catalog) > 0 {
				return m, m.startEdit()
			}
		case key.Matches(msg, DefaultKeyMap.Reset):
			m.app.Catalog.ResetToDefaults(m.ctx)
			m.catalog = m.app.Catalog.Current()
		}
	}

	return m, nil
}

func (m *PricesModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, DefaultKeyMap.Back):
			m.editing = false
			return m, nil

		case key.Matches(msg, DefaultKeyMap.Select):
			id := m.catalog[m.cursor].ID
			m.app.Catalog.UpdatePriceString(m.ctx, id, m.input.Value())
			m.catalog = m.app.Catalog.Current()
			m.editing = false
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *PricesModel) View() string {
	var s strings.Builder
	currency := m.app.Config.Invoice.Currency

	s.WriteString(titleStyle.Render("Ingredient Prices") + "\n")
	s.WriteString(subtitleStyle.Render("  Edits are picked up by the next invoice you open.") + "\n\n")

	if len(m.catalog) == 0 {
		s.WriteString(subtitleStyle.Render("  No ingredients") + "\n")
	}

	for i, ing := range m.catalog {
		name := padRight(truncateStr(strings.TrimSpace(ing.Name), 28), 30)
		price := padLeft(formatMoney(ing.Price, currency), 12)

		if m.editing && i == m.cursor {
			s.WriteString(fmt.Sprintf("> %s %s%s\n", name, m.input.View(), currency))
			continue
		}

		row := fmt.Sprintf("  %s %s", name, price)
		if i == m.cursor {
			row = selectedStyle.Render(row)
		}
		s.WriteString(row + "\n")
	}

	s.WriteString("\n")
	if m.statusMsg != "" {
		s.WriteString(statusStyle.Render("  ✓ "+m.statusMsg) + "\n\n")
	}

	if m.editing {
		s.WriteString(helpStyle.Render("  enter: save  esc: cancel"))
	} else {
		s.WriteString(helpStyle.Render("  ↑/↓: select  enter: edit price  r: reset to defaults"))
	}

	return s.String()
}

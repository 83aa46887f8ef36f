package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/andy/pizzabill/internal/app"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen represents the current active screen
type Screen int

const (
	ScreenPrices Screen = iota
	ScreenInvoice
)

// String returns the screen name
func (s Screen) String() string {
	switch s {
	case ScreenPrices:
		return "Prices"
	case ScreenInvoice:
		return "Invoice"
	default:
		return "Unknown"
	}
}

// Model is the root Bubble Tea model
type Model struct {
	ctx           context.Context
	app           *app.App
	currentScreen Screen
	width         int
	height        int

	// Screen models (lazy initialized)
	prices  tea.Model
	invoice tea.Model
}

// New creates a new root model
func New(ctx context.Context, a *app.App) Model {
	return Model{
		ctx:           ctx,
		app:           a,
		currentScreen: ScreenPrices,
		prices:        NewPricesModel(ctx, a),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	if m.prices != nil {
		return m.prices.Init()
	}
	return nil
}

// initScreen lazy-initializes a screen on first visit,
// and sends a RefreshDataMsg on subsequent visits so screens reload data.
func (m *Model) initScreen(screen Screen) tea.Cmd {
	switch screen {
	case ScreenPrices:
		if m.prices == nil {
			m.prices = NewPricesModel(m.ctx, m.app)
			return m.prices.Init()
		}
		return func() tea.Msg { return RefreshDataMsg{} }
	case ScreenInvoice:
		if m.invoice == nil {
			m.invoice = NewInvoiceModel(m.ctx, m.app)
			return m.invoice.Init()
		}
		return func() tea.Msg { return RefreshDataMsg{} }
	}
	return nil
}

// InputCapturer is implemented by screens that capture keyboard input (e.g. text forms).
// When active, global navigation keys (1, 2, Q) are suppressed.
type InputCapturer interface {
	IsCapturingInput() bool
}

func (m *Model) activeScreen() tea.Model {
	switch m.currentScreen {
	case ScreenPrices:
		return m.prices
	case ScreenInvoice:
		return m.invoice
	}
	return nil
}

// activeScreenCapturingInput returns true if the current screen is capturing text input
func (m *Model) activeScreenCapturingInput() bool {
	if ic, ok := m.activeScreen().(InputCapturer); ok {
		return ic.IsCapturingInput()
	}
	return false
}

func (m *Model) switchTo(screen Screen) tea.Cmd {
	if m.currentScreen == screen && m.activeScreen() != nil {
		return nil
	}
	m.currentScreen = screen
	return m.initScreen(screen)
}

// Update implements tea.Model - routes keys to screens
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Skip global navigation when a screen is capturing text input
		if !m.activeScreenCapturingInput() {
			switch {
			case key.Matches(msg, DefaultKeyMap.Quit):
				return m, tea.Quit

			case key.Matches(msg, DefaultKeyMap.Prices):
				return m, m.switchTo(ScreenPrices)

			case key.Matches(msg, DefaultKeyMap.Invoice):
				return m, m.switchTo(ScreenInvoice)
			}
		}

	case shareDoneMsg, printDoneMsg:
		// background work belongs to the invoice screen even after leaving it
		if m.invoice == nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.invoice, cmd = m.invoice.Update(msg)
		return m, cmd
	}

	// Route message to current screen
	var cmd tea.Cmd
	switch m.currentScreen {
	case ScreenPrices:
		if m.prices != nil {
			m.prices, cmd = m.prices.Update(msg)
		}
	case ScreenInvoice:
		if m.invoice != nil {
			m.invoice, cmd = m.invoice.Update(msg)
		}
	}

	return m, cmd
}

// View implements tea.Model - renders header + current screen + footer
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := headerStyle.Render(fmt.Sprintf("pizzabill - %s", m.currentScreen.String())) +
		subtitleStyle.Render(fmt.Sprintf("  session: %s", m.app.Session))

	footer := footerStyle.Render("[1] Prices  [2] Invoice  [Q]uit")

	content := "Loading..."
	if screen := m.activeScreen(); screen != nil {
		content = screen.View()
	}

	// Divider line between header and content
	innerWidth := m.width - 6 // account for border (2) + padding (4)
	if innerWidth < 20 {
		innerWidth = 20
	}
	dividerWidth := innerWidth - 12
	if dividerWidth < 10 {
		dividerWidth = 10
	}
	divider := lipgloss.NewStyle().Foreground(borderColor).Render(
		strings.Repeat("─", dividerWidth),
	)

	body := fmt.Sprintf("%s\n%s\n\n%s\n\n%s\n%s", header, divider, content, divider, footer)

	frame := appBorderStyle.
		Width(innerWidth).
		Height(m.height - 4) // leave room for border top/bottom
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame.Render(body))
}

// Run starts the TUI
func Run(ctx context.Context, a *app.App) error {
	p := tea.NewProgram(New(ctx, a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/andy/pizzabill/internal/app"
	"github.com/andy/pizzabill/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// invoiceMode represents the current screen mode
type invoiceMode int

const (
	invoiceModeList invoiceMode = iota
	invoiceModeQuantity
	invoiceModeCustomer
)

// customer form field indices
const (
	fieldCustomerName = iota
	fieldCustomerAddress
	fieldCount
)

// InvoiceModel composes one invoice from the price list snapshot taken when it opened
type InvoiceModel struct {
	ctx       context.Context
	app       *app.App
	inv       *domain.Invoice
	cursor    int
	preview   bool
	busy      bool
	statusMsg string
	err       error

	// Input state
	mode       invoiceMode
	qtyInput   textinput.Model
	fields     []textinput.Model
	fieldFocus int
}

// NewInvoiceModel creates a new invoice screen model with a fresh invoice
func NewInvoiceModel(ctx context.Context, a *app.App) tea.Model {
	m := &InvoiceModel{ctx: ctx, app: a}
	m.newInvoice()
	return m
}

// IsCapturingInput returns true when a quantity or the customer form is being typed
func (m *InvoiceModel) IsCapturingInput() bool {
	return m.mode != invoiceModeList
}

func (m *InvoiceModel) Init() tea.Cmd {
	return nil
}

// newInvoice reads the price list once and starts over
func (m *InvoiceModel) newInvoice() {
	m.inv = m.app.Invoices.NewInvoice(m.ctx)
	m.cursor = 0
	m.mode = invoiceModeList
	m.preview = false
	m.busy = false
	m.statusMsg = ""
	m.err = nil
}

func (m *InvoiceModel) currentLine() *domain.InvoiceLineItem {
	if m.cursor < 0 || m.cursor >= len(m.inv.Lines) {
		return nil
	}
	return m.inv.Lines[m.cursor]
}

func (m *InvoiceModel) startQuantity() tea.Cmd {
	line := m.currentLine()
	if line == nil {
		return nil
	}

	m.qtyInput = textinput.New()
	m.qtyInput.Placeholder = "0"
	m.qtyInput.CharLimit = 6
	m.qtyInput.Width = 8
	m.qtyInput.SetValue(strconv.Itoa(line.Quantity))
	m.mode = invoiceModeQuantity
	return m.qtyInput.Focus()
}

func (m *InvoiceModel) initForm() tea.Cmd {
	m.fields = make([]textinput.Model, fieldCount)

	m.fields[fieldCustomerName] = textinput.New()
	m.fields[fieldCustomerName].Placeholder = "Customer name"
	m.fields[fieldCustomerName].CharLimit = 100
	m.fields[fieldCustomerName].Width = 40
	m.fields[fieldCustomerName].SetValue(m.inv.CustomerName)

	m.fields[fieldCustomerAddress] = textinput.New()
	m.fields[fieldCustomerAddress].Placeholder = "Address"
	m.fields[fieldCustomerAddress].CharLimit = 200
	m.fields[fieldCustomerAddress].Width = 50
	m.fields[fieldCustomerAddress].SetValue(m.inv.CustomerAddress)

	m.mode = invoiceModeCustomer
	m.fieldFocus = fieldCustomerName
	return m.fields[fieldCustomerName].Focus()
}

func (m *InvoiceModel) share() tea.Cmd {
	title := m.app.Formatter.ShareTitle(m.inv)
	text := m.app.Formatter.Format(m.inv)
	sharer := m.app.Sharer
	ctx := m.ctx

	m.busy = true
	return func() tea.Msg {
		res, err := sharer.Share(ctx, title, text)
		return shareDoneMsg{result: res, err: err}
	}
}

func (m *InvoiceModel) printInvoice() tea.Cmd {
	inv := m.inv.Clone()
	printer := m.app.Workbook
	dir := m.app.Config.Invoice.OutputDir

	m.busy = true
	return func() tea.Msg {
		path, err := printer.Print(inv, dir)
		return printDoneMsg{path: path, err: err}
	}
}

func (m *InvoiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshDataMsg:
		// coming back to the screen starts a new invoice from the latest prices
		m.newInvoice()
		return m, nil

	case shareDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			m.statusMsg = ""
			return m, nil
		}
		m.statusMsg = msg.result.Message()
		return m, nil

	case printDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.statusMsg = "Invoice written to " + msg.path
		return m, nil
	}

	switch m.mode {
	case invoiceModeQuantity:
		return m.updateQuantity(msg)
	case invoiceModeCustomer:
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.statusMsg = ""
	m.err = nil

	switch {
	case key.Matches(keyMsg, DefaultKeyMap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, DefaultKeyMap.Down):
		if m.cursor < len(m.inv.Lines)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, DefaultKeyMap.Plus):
		if line := m.currentLine(); line != nil {
			m.inv.Increment(line.ID)
		}
	case key.Matches(keyMsg, DefaultKeyMap.Minus):
		if line := m.currentLine(); line != nil {
			m.inv.Decrement(line.ID)
		}
	case key.Matches(keyMsg, DefaultKeyMap.Select):
		return m, m.startQuantity()
	case key.Matches(keyMsg, DefaultKeyMap.Customer):
		return m, m.initForm()
	case key.Matches(keyMsg, DefaultKeyMap.Preview):
		m.preview = !m.preview
	case key.Matches(keyMsg, DefaultKeyMap.Share):
		if !m.busy {
			return m, m.share()
		}
	case key.Matches(keyMsg, DefaultKeyMap.Print):
		if !m.busy {
			return m, m.printInvoice()
		}
	}

	return m, nil
}

func (m *InvoiceModel) updateQuantity(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, DefaultKeyMap.Back):
			m.mode = invoiceModeList
			return m, nil

		case key.Matches(msg, DefaultKeyMap.Select):
			if line := m.currentLine(); line != nil {
				m.inv.SetQuantityString(line.ID, m.qtyInput.Value())
			}
			m.mode = invoiceModeList
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.qtyInput, cmd = m.qtyInput.Update(msg)
	return m, cmd
}

func (m *InvoiceModel) saveCustomer() {
	m.inv.CustomerName = strings.TrimSpace(m.fields[fieldCustomerName].Value())
	m.inv.CustomerAddress = strings.TrimSpace(m.fields[fieldCustomerAddress].Value())
	m.mode = invoiceModeList
}

func (m *InvoiceModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, DefaultKeyMap.Back):
			// Cancel form
			m.mode = invoiceModeList
			return m, nil

		case key.Matches(msg, DefaultKeyMap.Next):
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus + 1) % fieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case key.Matches(msg, DefaultKeyMap.Prev):
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus - 1 + fieldCount) % fieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case key.Matches(msg, DefaultKeyMap.Select):
			if m.fieldFocus == fieldCount-1 {
				m.saveCustomer()
				return m, nil
			}
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus++
			return m, m.fields[m.fieldFocus].Focus()

		case key.Matches(msg, DefaultKeyMap.Save):
			m.saveCustomer()
			return m, nil
		}
	}

	// Update the focused text input
	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *InvoiceModel) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Invoice "+m.inv.Number) + subtitleStyle.Render("  "+m.inv.Date) + "\n")
	s.WriteString(subtitleStyle.Render(fmt.Sprintf("  Customer: %s  Address: %s",
		orDots(m.inv.CustomerName), orDots(m.inv.CustomerAddress))) + "\n\n")

	switch {
	case m.mode == invoiceModeCustomer:
		s.WriteString(m.viewForm())
	case m.preview:
		s.WriteString(boxStyle.Render(m.app.Formatter.Format(m.inv)) + "\n")
	default:
		s.WriteString(m.viewLines())
	}

	s.WriteString("\n" + m.viewTotalBar() + "\n\n")

	if m.err != nil {
		s.WriteString(lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n")
	} else if m.statusMsg != "" {
		s.WriteString(statusStyle.Render("  ✓ "+m.statusMsg) + "\n\n")
	} else if m.busy {
		s.WriteString(subtitleStyle.Render("  Working...") + "\n\n")
	}

	switch m.mode {
	case invoiceModeQuantity:
		s.WriteString(helpStyle.Render("  enter: set quantity  esc: cancel"))
	case invoiceModeCustomer:
		s.WriteString(helpStyle.Render("  tab/shift+tab: navigate fields  ctrl+s: save  enter: next/save  esc: cancel"))
	default:
		s.WriteString(helpStyle.Render("  ↑/↓: select  +/-: quantity  enter: type quantity  c: customer  p: preview  s: share  P: print"))
	}

	return s.String()
}

func (m *InvoiceModel) viewLines() string {
	var s strings.Builder
	currency := m.app.Config.Invoice.Currency

	s.WriteString(subtitleStyle.Render(fmt.Sprintf("  %s %s %s %s",
		padRight("Name", 28), padLeft("Unit Price", 12), padLeft("Qty", 6), padLeft("Amount", 12))) + "\n")

	for i, line := range m.inv.Lines {
		name := padRight(truncateStr(strings.TrimSpace(line.Name), 26), 28)
		unit := padLeft(formatMoney(line.UnitPrice, currency), 12)

		qty := padLeft(strconv.Itoa(line.Quantity), 6)
		if m.mode == invoiceModeQuantity && i == m.cursor {
			qty = m.qtyInput.View()
		}

		amount := padLeft(formatMoney(line.Amount(), currency), 12)
		if line.Quantity > 0 {
			amount = amountStyle.Render(amount)
		} else {
			amount = zeroQtyStyle.Render(amount)
		}

		prefix := "  "
		if i == m.cursor {
			prefix = "> "
			name = selectedStyle.Render(name)
		}
		s.WriteString(fmt.Sprintf("%s%s %s %s %s\n", prefix, name, unit, qty, amount))
	}
	return s.String()
}

func (m *InvoiceModel) viewForm() string {
	var s string

	labels := []string{"Customer:", "Address:"}
	for i, label := range labels {
		indicator := "  "
		labelStyle := subtitleStyle
		if i == m.fieldFocus {
			indicator = "> "
			labelStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
		}
		s += fmt.Sprintf("%s%s\n  %s\n\n", indicator, labelStyle.Render(label), m.fields[i].View())
	}
	return s
}

func (m *InvoiceModel) viewTotalBar() string {
	currency := m.app.Config.Invoice.Currency
	return totalBarStyle.Render(fmt.Sprintf("Total Items: %d    Total: %s",
		m.inv.ItemCount(), formatMoney(m.inv.Total(), currency)))
}

func orDots(s string) string {
	if s == "" {
		return "..."
	}
	return s
}

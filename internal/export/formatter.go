package export

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/andy/pizzabill/internal/config"
	"github.com/andy/pizzabill/internal/domain"
)

const notAvailable = "N/A"

// Formatter renders an invoice as shareable plain text
type Formatter struct {
	Header   string
	Currency string
	Contact  string
	Note     string
}

// NewFormatter builds a formatter from the invoice section of the config
func NewFormatter(cfg config.InvoiceConfig) *Formatter {
	return &Formatter{
		Header:   cfg.Header,
		Currency: cfg.Currency,
		Contact:  cfg.Contact,
		Note:     cfg.Note,
	}
}

// Format renders the invoice text. Only lines with a positive quantity are listed.
func (f *Formatter) Format(inv *domain.Invoice) string {
	items := make([]string, 0, len(inv.Lines))
	for i, line := range inv.ActiveLines() {
		items = append(items, fmt.Sprintf("%d. %s - Qty: %d - Unit Price: %s - Total: %s",
			i+1, line.Name, line.Quantity, f.Money(line.UnitPrice), f.Money(line.Amount())))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", f.Header)
	fmt.Fprintf(&b, "Invoice: %s\n", inv.Number)
	fmt.Fprintf(&b, "Date: %s\n", inv.Date)
	fmt.Fprintf(&b, "Customer: %s\n", orNA(inv.CustomerName))
	fmt.Fprintf(&b, "Address: %s\n", orNA(inv.CustomerAddress))
	b.WriteString("\n")
	b.WriteString("Items:\n")
	b.WriteString(strings.Join(items, "\n"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Total: %s\n", f.Money(inv.Total()))
	fmt.Fprintf(&b, "Contact: %s\n", f.Contact)
	fmt.Fprintf(&b, "Note: %s", f.Note)

	return strings.TrimSpace(b.String())
}

// ShareTitle is the title passed along with shared text
func (f *Formatter) ShareTitle(inv *domain.Invoice) string {
	return "Pizza Invoice " + inv.Number
}

// Money renders an amount with no decimals followed by the currency symbol
func (f *Formatter) Money(v float64) string {
	return FormatAmount(v) + f.Currency
}

// FormatAmount rounds half away from zero and drops the decimals
func FormatAmount(v float64) string {
	r := math.Round(v)
	if r == 0 {
		r = 0 // normalise -0
	}
	return strconv.FormatFloat(r, 'f', 0, 64)
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

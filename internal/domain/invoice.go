package domain

// DateLayout is the DD-MM-YYYY layout printed on invoices
const DateLayout = "02-01-2006"

// Invoice is a customer invoice built from a price list snapshot
type Invoice struct {
	Number          string
	Date            string
	CustomerName    string
	CustomerAddress string

	// One line per catalog entry present when the invoice was created.
	// The set of ids never changes afterwards.
	Lines []*InvoiceLineItem
}

// InvoiceLineItem is one invoice row tied to a single ingredient
type InvoiceLineItem struct {
	ID        string
	Name      string
	Quantity  int
	UnitPrice float64 // snapshot, not linked to the catalog
}

// Amount returns quantity * unit price
func (l *InvoiceLineItem) Amount() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

// NewInvoice creates an invoice with one zero-quantity line per catalog entry.
// Unit prices are copied from the catalog as it is right now.
func NewInvoice(number, date string, catalog Catalog) *Invoice {
	lines := make([]*InvoiceLineItem, 0, len(catalog))
	for _, ing := range catalog {
		lines = append(lines, &InvoiceLineItem{
			ID:        ing.ID,
			Name:      ing.Name,
			Quantity:  0,
			UnitPrice: CoercePrice(ing.Price),
		})
	}
	return &Invoice{
		Number: number,
		Date:   date,
		Lines:  lines,
	}
}

// Line returns the line with the given id, or nil
func (i *Invoice) Line(id string) *InvoiceLineItem {
	for _, l := range i.Lines {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// SetQuantity sets the quantity of one line. Negative input becomes 0.
// Returns false if no line has that id.
func (i *Invoice) SetQuantity(id string, quantity int) bool {
	l := i.Line(id)
	if l == nil {
		return false
	}
	l.Quantity = CoerceQuantity(quantity)
	return true
}

// SetQuantityString parses free text and sets the quantity of one line
func (i *Invoice) SetQuantityString(id, raw string) bool {
	return i.SetQuantity(id, ParseQuantity(raw))
}

// Increment adds one to the line's quantity
func (i *Invoice) Increment(id string) bool {
	l := i.Line(id)
	if l == nil {
		return false
	}
	return i.SetQuantity(id, l.Quantity+1)
}

// Decrement removes one from the line's quantity; no-op at zero
func (i *Invoice) Decrement(id string) bool {
	l := i.Line(id)
	if l == nil || l.Quantity == 0 {
		return false
	}
	return i.SetQuantity(id, l.Quantity-1)
}

// Total returns the sum of all line amounts
func (i *Invoice) Total() float64 {
	var total float64
	for _, l := range i.Lines {
		total += l.Amount()
	}
	return total
}

// ActiveLines returns the lines with a quantity above zero, in catalog order
func (i *Invoice) ActiveLines() []*InvoiceLineItem {
	active := make([]*InvoiceLineItem, 0, len(i.Lines))
	for _, l := range i.Lines {
		if l.Quantity > 0 {
			active = append(active, l)
		}
	}
	return active
}

// ItemCount returns the number of active lines
func (i *Invoice) ItemCount() int {
	return len(i.ActiveLines())
}

// Clone returns a deep copy, safe to hand to another goroutine
func (i *Invoice) Clone() *Invoice {
	out := *i
	out.Lines = make([]*InvoiceLineItem, len(i.Lines))
	for n, l := range i.Lines {
		line := *l
		out.Lines[n] = &line
	}
	return &out
}

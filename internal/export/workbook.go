package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/andy/pizzabill/internal/domain"
	"github.com/andy/pizzabill/internal/logger"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName = "Invoice"

	// excelize paper size index for A4
	paperA4 = 9

	// the printed table always has at least this many rows
	minTableRows = 17
)

// PrintLayout holds the fixed wording of the printed invoice
type PrintLayout struct {
	Subtitles   []string
	NoteLabel   string
	NoteText    string
	TotalLabel  string
	CustomerTag string
	AddressTag  string
	SellerTag   string
	EmptyTable  string
	Blank       string
}

// DefaultPrintLayout is the shop's printed invoice wording
func DefaultPrintLayout() PrintLayout {
	return PrintLayout{
		Subtitles: []string{
			"មានលក់សាច់នំភីហ្សា គ្រឿងផ្សំ និងសម្ភារគ្រប់មុខ",
			"និងមានទទួលបង្រៀនធ្វេីភីហ្សា",
		},
		NoteLabel:   "បញ្ជាក់:",
		NoteText:    "ទំនិញទិញហេីយមិនអាចដូរយកលុយវិញបានទេ",
		TotalLabel:  "សរុប/TOTAL:",
		CustomerTag: "អតិថិជន:",
		AddressTag:  "ទីតាំង:",
		SellerTag:   "អ្នកលក់: KH PIZZA",
		EmptyTable:  "No items added to invoice yet.",
		Blank:       "........................",
	}
}

// WorkbookPrinter writes an A4 portrait <number>.xlsx ready to print
type WorkbookPrinter struct {
	Formatter *Formatter
	Layout    PrintLayout
	log       zerolog.Logger
}

// NewWorkbookPrinter creates a printer with the default layout
func NewWorkbookPrinter(f *Formatter) *WorkbookPrinter {
	return &WorkbookPrinter{
		Formatter: f,
		Layout:    DefaultPrintLayout(),
		log:       logger.WithComponent("print"),
	}
}

func (p *WorkbookPrinter) Print(inv *domain.Invoice, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return "", fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := p.setupPage(f); err != nil {
		return "", err
	}

	row := p.fillHeader(f, inv)
	row = p.fillTable(f, inv, row)
	p.fillFooter(f, inv, row)

	path := filepath.Join(dir, inv.Number+".xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}

	p.log.Info().Str("invoice", inv.Number).Str("path", path).Msg("invoice workbook written")
	return path, nil
}

func (p *WorkbookPrinter) setupPage(f *excelize.File) error {
	size := paperA4
	orientation := "portrait"
	fitWidth := 1
	if err := f.SetPageLayout(sheetName, &excelize.PageLayoutOptions{
		Size:        &size,
		Orientation: &orientation,
		FitToWidth:  &fitWidth,
	}); err != nil {
		return fmt.Errorf("failed to set page layout: %w", err)
	}

	widths := map[string]float64{"A": 6, "B": 34, "C": 8, "D": 14, "E": 16}
	for col, w := range widths {
		if err := f.SetColWidth(sheetName, col, col, w); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}
	return nil
}

// fillHeader writes the shop block and invoice identity, returning the next free row
func (p *WorkbookPrinter) fillHeader(f *excelize.File, inv *domain.Invoice) int {
	bold, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	centered, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	row := 1
	p.merged(f, row, p.Formatter.Header, bold)
	row++
	for _, s := range p.Layout.Subtitles {
		p.merged(f, row, s, centered)
		row++
	}
	p.merged(f, row, "Phone: "+p.Formatter.Contact, centered)
	row += 2

	p.setCell(f, cell(1, row), "Number: "+inv.Number)
	p.setCell(f, cell(3, row), "INVOICE")
	p.setCell(f, cell(5, row), "Date: "+inv.Date)
	return row + 1
}

func (p *WorkbookPrinter) fillTable(f *excelize.File, inv *domain.Invoice, row int) int {
	head, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"EFF6FF"}},
		Border: tableBorder(),
	})
	body, _ := f.NewStyle(&excelize.Style{Border: tableBorder()})

	for i, h := range []string{"No.", "Name of Goods", "Qty", "Unit Price", "Amount"} {
		p.setCell(f, cell(i+1, row), h)
	}
	p.style(f, row, head)
	row++

	active := inv.ActiveLines()
	if len(active) == 0 {
		p.setCell(f, cell(1, row), p.Layout.EmptyTable)
		if err := f.MergeCell(sheetName, cell(1, row), cell(5, row)); err != nil {
			p.log.Warn().Err(err).Msg("failed to merge cells")
		}
		p.style(f, row, body)
		row++
	}
	for i, line := range active {
		p.setCell(f, cell(1, row), i+1)
		p.setCell(f, cell(2, row), line.Name)
		p.setCell(f, cell(3, row), line.Quantity)
		p.setCell(f, cell(4, row), p.Formatter.Money(line.UnitPrice))
		p.setCell(f, cell(5, row), p.Formatter.Money(line.Amount()))
		p.style(f, row, body)
		row++
	}

	for pad := max(len(active), 1); pad < minTableRows; pad++ {
		p.style(f, row, body)
		row++
	}
	return row
}

func (p *WorkbookPrinter) fillFooter(f *excelize.File, inv *domain.Invoice, row int) {
	bold, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	row++
	p.setCell(f, cell(1, row), p.Layout.NoteLabel+" "+p.Layout.NoteText)
	p.setCell(f, cell(4, row), p.Layout.TotalLabel)
	p.setCell(f, cell(5, row), p.Formatter.Money(inv.Total()))
	if err := f.SetCellStyle(sheetName, cell(4, row), cell(5, row), bold); err != nil {
		p.log.Warn().Err(err).Msg("failed to style total")
	}

	row += 2
	p.setCell(f, cell(1, row), p.Layout.CustomerTag+" "+orBlank(inv.CustomerName, p.Layout.Blank))
	p.setCell(f, cell(4, row), p.Layout.SellerTag)
	row++
	p.setCell(f, cell(1, row), p.Layout.AddressTag+" "+orBlank(inv.CustomerAddress, p.Layout.Blank))
}

func (p *WorkbookPrinter) merged(f *excelize.File, row int, value string, style int) {
	p.setCell(f, cell(1, row), value)
	if err := f.MergeCell(sheetName, cell(1, row), cell(5, row)); err != nil {
		p.log.Warn().Err(err).Int("row", row).Msg("failed to merge cells")
	}
	if err := f.SetCellStyle(sheetName, cell(1, row), cell(5, row), style); err != nil {
		p.log.Warn().Err(err).Int("row", row).Msg("failed to style row")
	}
}

func (p *WorkbookPrinter) style(f *excelize.File, row, style int) {
	if err := f.SetCellStyle(sheetName, cell(1, row), cell(5, row), style); err != nil {
		p.log.Warn().Err(err).Int("row", row).Msg("failed to style row")
	}
}

// setCell sets a cell value, logging instead of failing the whole print
func (p *WorkbookPrinter) setCell(f *excelize.File, axis string, value any) {
	if err := f.SetCellValue(sheetName, axis, value); err != nil {
		p.log.Warn().Str("cell", axis).Err(err).Msg("failed to set cell value")
	}
}

func tableBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "9CA3AF", Style: 1},
		{Type: "right", Color: "9CA3AF", Style: 1},
		{Type: "top", Color: "9CA3AF", Style: 1},
		{Type: "bottom", Color: "9CA3AF", Style: 1},
	}
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func orBlank(s, blank string) string {
	if s == "" {
		return blank
	}
	return s
}

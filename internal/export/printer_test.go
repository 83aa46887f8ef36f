package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andy/pizzabill/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleInvoice() *domain.Invoice {
	inv := domain.NewInvoice("PZ000777", "14-10-2026", domain.DefaultCatalog())
	inv.CustomerName = "Sokha"
	inv.SetQuantity("7", 2)
	inv.SetQuantity("12", 1)
	return inv
}

func TestTextPrinter(t *testing.T) {
	dir := t.TempDir()
	inv := sampleInvoice()
	p := &TextPrinter{Formatter: testFormatter()}

	path, err := p.Print(inv, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "PZ000777.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testFormatter().Format(inv), strings.TrimSuffix(string(data), "\n"))
}

func TestWorkbookPrinter(t *testing.T) {
	dir := t.TempDir()
	inv := sampleInvoice()

	path, err := NewWorkbookPrinter(testFormatter()).Print(inv, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "PZ000777.xlsx"), path)
	assert.FileExists(t, path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	layout, err := f.GetPageLayout(sheetName)
	require.NoError(t, err)
	require.NotNil(t, layout.Size)
	assert.Equal(t, paperA4, *layout.Size)
	require.NotNil(t, layout.Orientation)
	assert.Equal(t, "portrait", *layout.Orientation)

	title, _ := f.GetCellValue(sheetName, "A1")
	assert.Equal(t, "KH ផ្គត់ផ្គង់ភីហ្សា", title)

	number, _ := f.GetCellValue(sheetName, "A6")
	assert.Equal(t, "Number: PZ000777", number)

	head, _ := f.GetCellValue(sheetName, "B7")
	assert.Equal(t, "Name of Goods", head)

	name, _ := f.GetCellValue(sheetName, "B8")
	assert.Equal(t, "ឈីស", name)
	amount, _ := f.GetCellValue(sheetName, "E8")
	assert.Equal(t, "172000៛", amount)
	second, _ := f.GetCellValue(sheetName, "B9")
	assert.Equal(t, "ពោត", second)

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	var sawTotal, sawCustomer bool
	for _, r := range rows {
		line := strings.Join(r, " ")
		if strings.Contains(line, "សរុប/TOTAL:") {
			sawTotal = strings.Contains(line, "176000៛")
		}
		if strings.Contains(line, "អតិថិជន: Sokha") {
			sawCustomer = true
		}
	}
	assert.True(t, sawTotal, "total row")
	assert.True(t, sawCustomer, "customer row")
}

func TestWorkbookPrinter_EmptyInvoice(t *testing.T) {
	inv := domain.NewInvoice("PZ000001", "14-10-2026", domain.DefaultCatalog())

	path, err := NewWorkbookPrinter(testFormatter()).Print(inv, t.TempDir())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	v, _ := f.GetCellValue(sheetName, "A8")
	assert.Equal(t, "No items added to invoice yet.", v)
}

package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/andy/pizzabill/internal/domain"
)

// Printer writes a printable rendition of an invoice into dir and returns its path
type Printer interface {
	Print(inv *domain.Invoice, dir string) (string, error)
}

// TextPrinter writes the share text to <number>.txt
type TextPrinter struct {
	Formatter *Formatter
}

func (p *TextPrinter) Print(inv *domain.Invoice, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, inv.Number+".txt")
	if err := os.WriteFile(path, []byte(p.Formatter.Format(inv)+"\n"), 0644); err != nil {
		return "", fmt.Errorf("failed to write invoice: %w", err)
	}
	return path, nil
}

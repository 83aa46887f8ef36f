package service

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/andy/pizzabill/internal/domain"
)

// invoiceSuffixSpace bounds the random part of an invoice number
const invoiceSuffixSpace = 100000

// IdentityGenerator produces invoice numbers and dates.
// Uniqueness of numbers is best effort; there is no collision check.
type IdentityGenerator struct {
	prefix string
	intn   func(n int) int
	now    func() time.Time
}

// NewIdentityGenerator creates a generator with the given number prefix
func NewIdentityGenerator(prefix string) *IdentityGenerator {
	return &IdentityGenerator{
		prefix: prefix,
		intn:   rand.Intn,
		now:    time.Now,
	}
}

// NewInvoiceNumber returns prefix plus a six digit zero padded suffix
func (g *IdentityGenerator) NewInvoiceNumber() string {
	return fmt.Sprintf("%s%06d", g.prefix, g.intn(invoiceSuffixSpace))
}

// Today returns the current local date as DD-MM-YYYY
func (g *IdentityGenerator) Today() string {
	return g.now().Local().Format(domain.DateLayout)
}

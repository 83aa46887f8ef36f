package service

import (
	"context"

	"github.com/andy/pizzabill/internal/domain"
)

// InvoiceService starts invoices from the current price list
type InvoiceService interface {
	// NewInvoice reads the price list once and snapshots it into a fresh invoice
	NewInvoice(ctx context.Context) *domain.Invoice
}

type invoiceService struct {
	bridge   *Bridge
	identity *IdentityGenerator
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(bridge *Bridge, identity *IdentityGenerator) InvoiceService {
	return &invoiceService{
		bridge:   bridge,
		identity: identity,
	}
}

func (s *invoiceService) NewInvoice(ctx context.Context) *domain.Invoice {
	catalog := s.bridge.Load(ctx)
	return domain.NewInvoice(s.identity.NewInvoiceNumber(), s.identity.Today(), catalog)
}

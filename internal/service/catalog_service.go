package service

import (
	"context"

	"github.com/andy/pizzabill/internal/domain"
	"github.com/andy/pizzabill/internal/logger"
	"github.com/rs/zerolog"
)

// Notification texts
const (
	MsgPriceUpdated = "Price updated successfully!"
	MsgPricesReset  = "Prices reset to defaults!"
)

// Notifier receives user-facing success messages
type Notifier interface {
	Notify(msg string)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(msg string)

func (f NotifierFunc) Notify(msg string) { f(msg) }

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}

// CatalogService edits the price list and keeps the bridge in step
type CatalogService interface {
	// Current returns a copy of the price list
	Current() domain.Catalog

	// Reload re-reads the price list from the bridge
	Reload(ctx context.Context) domain.Catalog

	// UpdatePrice replaces one entry's price. Returns whether the id exists.
	UpdatePrice(ctx context.Context, id string, price float64) bool

	// UpdatePriceString parses raw as a price, then behaves like UpdatePrice
	UpdatePriceString(ctx context.Context, id, raw string) bool

	// ResetToDefaults replaces the price list with the compiled-in defaults
	ResetToDefaults(ctx context.Context)

	// SetNotifier replaces the notification side channel
	SetNotifier(n Notifier)
}

type catalogService struct {
	bridge   *Bridge
	catalog  domain.Catalog
	notifier Notifier
	log      zerolog.Logger
}

// NewCatalogService creates a catalog service seeded from the bridge
func NewCatalogService(ctx context.Context, bridge *Bridge, notifier Notifier) CatalogService {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &catalogService{
		bridge:   bridge,
		catalog:  bridge.Load(ctx),
		notifier: notifier,
		log:      logger.WithComponent("catalog"),
	}
}

func (s *catalogService) Current() domain.Catalog {
	return s.catalog.Clone()
}

func (s *catalogService) Reload(ctx context.Context) domain.Catalog {
	s.catalog = s.bridge.Load(ctx)
	return s.catalog.Clone()
}

func (s *catalogService) UpdatePrice(ctx context.Context, id string, price float64) bool {
	updated, found := s.catalog.WithPrice(id, price)
	if !found {
		s.log.Debug().Str("id", id).Msg("price update for unknown id")
	} else {
		s.log.Debug().Str("id", id).Float64("price", domain.CoercePrice(price)).Msg("price updated")
	}

	s.catalog = updated
	// write failures are logged by the bridge and do not undo the edit
	_ = s.bridge.Save(ctx, s.catalog)
	s.notifier.Notify(MsgPriceUpdated)
	return found
}

func (s *catalogService) UpdatePriceString(ctx context.Context, id, raw string) bool {
	return s.UpdatePrice(ctx, id, domain.ParsePrice(raw))
}

func (s *catalogService) ResetToDefaults(ctx context.Context) {
	s.catalog = domain.DefaultCatalog()
	_ = s.bridge.Save(ctx, s.catalog)
	s.log.Debug().Msg("prices reset")
	s.notifier.Notify(MsgPricesReset)
}

func (s *catalogService) SetNotifier(n Notifier) {
	if n == nil {
		n = nopNotifier{}
	}
	s.notifier = n
}

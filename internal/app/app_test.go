package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/andy/pizzabill/internal/config"
	"github.com/andy/pizzabill/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pebbleConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Database.Path = filepath.Join(dir, "pizzabill.db")
	cfg.Storage.Backend = config.BackendPebble
	cfg.Storage.PebbleDir = filepath.Join(dir, "pebble")
	cfg.Invoice.OutputDir = filepath.Join(dir, "invoices")
	return cfg
}

func TestNewWithConfig_PebbleSessionSharesPrices(t *testing.T) {
	logger.Discard()
	ctx := context.Background()
	cfg := pebbleConfig(t)

	a, err := NewWithConfig(ctx, cfg, "")
	require.NoError(t, err)
	assert.Equal(t, "default", a.Session)
	assert.Nil(t, a.DB)

	a.Catalog.UpdatePrice(ctx, "7", 90000)
	require.NoError(t, a.Close())

	// a later process in the same session sees the edit
	b, err := NewWithConfig(ctx, cfg, "default")
	require.NoError(t, err)
	defer b.Close()

	inv := b.Invoices.NewInvoice(ctx)
	assert.Equal(t, float64(90000), inv.Line("7").UnitPrice)
	assert.Regexp(t, `^PZ\d{6}$`, inv.Number)
}

func TestNewWithConfig_OtherSessionStartsFromDefaults(t *testing.T) {
	logger.Discard()
	ctx := context.Background()
	cfg := pebbleConfig(t)

	a, err := NewWithConfig(ctx, cfg, "morning")
	require.NoError(t, err)
	a.Catalog.UpdatePrice(ctx, "7", 1)
	require.NoError(t, a.Close())

	b, err := NewWithConfig(ctx, cfg, "evening")
	require.NoError(t, err)
	defer b.Close()

	cheese, _ := b.Catalog.Current().Find("7")
	assert.Equal(t, float64(86000), cheese.Price)
}

func TestNewWithConfig_RejectsBadInput(t *testing.T) {
	logger.Discard()
	ctx := context.Background()

	_, err := NewWithConfig(ctx, pebbleConfig(t), "../etc")
	assert.Error(t, err)

	cfg := pebbleConfig(t)
	cfg.Storage.Backend = "redis"
	_, err = NewWithConfig(ctx, cfg, "")
	assert.ErrorContains(t, err, "unknown storage backend")
}

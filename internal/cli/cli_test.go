package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/andy/pizzabill/internal/app"
	"github.com/andy/pizzabill/internal/config"
	"github.com/andy/pizzabill/internal/domain"
	"github.com/andy/pizzabill/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Database.Path = filepath.Join(dir, "pizzabill.db")
	cfg.Storage.Backend = config.BackendPebble
	cfg.Storage.PebbleDir = filepath.Join(dir, "pebble")
	cfg.Invoice.OutputDir = filepath.Join(dir, "invoices")
	return cfg
}

// run executes one command against a fresh app over cfg, like a separate process would
func run(t *testing.T, cfg *config.Config, args ...string) string {
	t.Helper()
	logger.Discard()

	a, err := app.NewWithConfig(context.Background(), cfg, "")
	require.NoError(t, err)
	SetApp(a)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, Execute(context.Background()))
	return out.String()
}

func TestPricesList(t *testing.T) {
	out := run(t, testConfig(t), "prices", "list")
	assert.Contains(t, out, "ឈីស")
	assert.Contains(t, out, "86000៛")
	assert.Contains(t, out, "Total: 18 ingredient(s)")
}

func TestPricesSetThenReset(t *testing.T) {
	cfg := testConfig(t)

	out := run(t, cfg, "prices", "set", "7", "90000")
	assert.Contains(t, out, "✓ Price updated successfully!")
	assert.Contains(t, out, "90000៛")

	out = run(t, cfg, "prices", "list")
	assert.Contains(t, out, "90000៛")
	assert.NotContains(t, out, "86000៛")

	out = run(t, cfg, "prices", "reset")
	assert.Contains(t, out, "✓ Prices reset to defaults!")

	out = run(t, cfg, "prices", "list")
	assert.Contains(t, out, "86000៛")
}

func TestPricesSetUnknownID(t *testing.T) {
	out := run(t, testConfig(t), "prices", "set", "14", "5")
	assert.Contains(t, out, "no ingredient with ID 14")
	assert.NotContains(t, out, "Price updated successfully!")
}

func TestInvoiceNew(t *testing.T) {
	cfg := testConfig(t)
	out := run(t, cfg, "invoice", "new", "--customer", "Dara", "--qty", "7=2", "--qty", "12=1", "--print")

	assert.Contains(t, out, "Customer: Dara")
	assert.Contains(t, out, "Address: N/A")
	assert.Contains(t, out, "1. ឈីស - Qty: 2 - Unit Price: 86000៛ - Total: 172000៛")
	assert.Contains(t, out, "2. ពោត - Qty: 1 - Unit Price: 4000៛ - Total: 4000៛")
	assert.Contains(t, out, "Total: 176000៛")
	assert.Contains(t, out, "Invoice written to "+cfg.Invoice.OutputDir)
}

func TestApplyQuantities(t *testing.T) {
	inv := domain.NewInvoice("PZ000001", "01-01-2026", domain.DefaultCatalog())

	require.NoError(t, applyQuantities(inv, []string{"7=2", " 12 =x", "1=2.9"}))
	assert.Equal(t, 2, inv.Line("7").Quantity)
	assert.Equal(t, 0, inv.Line("12").Quantity)
	assert.Equal(t, 2, inv.Line("1").Quantity)

	assert.Error(t, applyQuantities(inv, []string{"7"}))
	assert.Error(t, applyQuantities(inv, []string{"14=1"}))
}

func TestPadding(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "   ab", padLeft("ab", 5))
	assert.Equal(t, "abcdef", padRight("abcdef", 3))
}

func TestResolveSession(t *testing.T) {
	t.Setenv("PIZZABILL_SESSION", "")
	sessionName = ""
	assert.Equal(t, "default", resolveSession())

	t.Setenv("PIZZABILL_SESSION", "evening")
	assert.Equal(t, "evening", resolveSession())

	sessionName = "morning"
	defer func() { sessionName = "" }()
	assert.Equal(t, "morning", resolveSession())
}

package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedIdentity(n int, now time.Time) *IdentityGenerator {
	return &IdentityGenerator{
		prefix: "PZ",
		intn:   func(int) int { return n },
		now:    func() time.Time { return now },
	}
}

func TestIdentityGenerator_NumberFormat(t *testing.T) {
	g := NewIdentityGenerator("PZ")
	pattern := regexp.MustCompile(`^PZ\d{6}$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, pattern, g.NewInvoiceNumber())
	}

	assert.Equal(t, "PZ000042", fixedIdentity(42, time.Now()).NewInvoiceNumber())
	assert.Equal(t, "PZ099999", fixedIdentity(99999, time.Now()).NewInvoiceNumber())
}

func TestIdentityGenerator_Today(t *testing.T) {
	now := time.Date(2026, 2, 1, 10, 30, 0, 0, time.Local)
	assert.Equal(t, "01-02-2026", fixedIdentity(0, now).Today())
}

func TestInvoiceService_NewInvoiceSnapshotsPrices(t *testing.T) {
	ctx := context.Background()
	repo := newMockSnapshotRepo()
	bridge := NewBridge(repo, DefaultSessionID, testKey)
	catalog := NewCatalogService(ctx, bridge, nil)
	invoices := NewInvoiceService(bridge, fixedIdentity(7, time.Date(2026, 5, 9, 0, 0, 0, 0, time.Local)))

	catalog.UpdatePrice(ctx, "7", 90000)
	inv := invoices.NewInvoice(ctx)

	assert.Equal(t, "PZ000007", inv.Number)
	assert.Equal(t, "09-05-2026", inv.Date)
	require.Len(t, inv.Lines, len(catalog.Current()))
	assert.Equal(t, float64(90000), inv.Line("7").UnitPrice)
	assert.Zero(t, inv.Total())

	// later edits do not reach an open invoice
	catalog.UpdatePrice(ctx, "7", 1)
	assert.Equal(t, float64(90000), inv.Line("7").UnitPrice)
}

type purgeRecorder struct {
	mockSnapshotRepo
	cutoff time.Time
}

func (p *purgeRecorder) PurgeBefore(ctx context.Context, t time.Time) (int64, error) {
	p.cutoff = t
	return 2, nil
}

func TestPurgeIdleSessions(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 9, 12, 0, 0, 0, time.UTC)
	repo := &purgeRecorder{}

	n, err := PurgeIdleSessions(ctx, repo, 12*time.Hour, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, now.Add(-12*time.Hour), repo.cutoff)

	repo.cutoff = time.Time{}
	n, err = PurgeIdleSessions(ctx, repo, 0, now)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.True(t, repo.cutoff.IsZero(), "disabled purge never touches storage")
}

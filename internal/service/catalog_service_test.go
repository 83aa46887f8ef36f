package service

import (
	"context"
	"testing"

	"github.com/andy/pizzabill/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_CheesePriceScenario(t *testing.T) {
	ctx := context.Background()
	repo := newMockSnapshotRepo()
	notes := &recordingNotifier{}
	svc := NewCatalogService(ctx, NewBridge(repo, DefaultSessionID, testKey), notes)

	cheese, _ := svc.Current().Find("7")
	require.Equal(t, float64(86000), cheese.Price)

	assert.True(t, svc.UpdatePriceString(ctx, "7", "90000"))
	assert.Equal(t, []string{MsgPriceUpdated}, notes.messages)

	// the invoice side sees the new price
	inv := NewInvoiceService(NewBridge(repo, DefaultSessionID, testKey), NewIdentityGenerator("PZ")).NewInvoice(ctx)
	assert.Equal(t, float64(90000), inv.Line("7").UnitPrice)

	svc.ResetToDefaults(ctx)
	assert.Equal(t, []string{MsgPriceUpdated, MsgPricesReset}, notes.messages)

	reloaded := NewBridge(repo, DefaultSessionID, testKey).Load(ctx)
	assert.Equal(t, domain.DefaultCatalog(), reloaded)
}

func TestCatalogService_UpdateTouchesOnlyOneEntry(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(ctx, NewBridge(newMockSnapshotRepo(), DefaultSessionID, testKey), nil)
	before := svc.Current()

	svc.UpdatePrice(ctx, "3", 2000)

	after := svc.Current()
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
		if before[i].ID == "3" {
			assert.Equal(t, float64(2000), after[i].Price)
		} else {
			assert.Equal(t, before[i], after[i])
		}
	}
}

func TestCatalogService_BadPriceCoercedToZero(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(ctx, NewBridge(newMockSnapshotRepo(), DefaultSessionID, testKey), nil)

	svc.UpdatePriceString(ctx, "1", "abc")
	got, _ := svc.Current().Find("1")
	assert.Zero(t, got.Price)

	svc.UpdatePrice(ctx, "2", -10)
	got, _ = svc.Current().Find("2")
	assert.Zero(t, got.Price)
}

func TestCatalogService_UnknownIDStillSavesAndNotifies(t *testing.T) {
	ctx := context.Background()
	repo := newMockSnapshotRepo()
	notes := &recordingNotifier{}
	svc := NewCatalogService(ctx, NewBridge(repo, DefaultSessionID, testKey), notes)

	assert.False(t, svc.UpdatePrice(ctx, "missing", 5))
	assert.Equal(t, 1, repo.puts)
	assert.Equal(t, []string{MsgPriceUpdated}, notes.messages)
	assert.Equal(t, domain.DefaultCatalog(), svc.Current())
}

func TestCatalogService_WriteFailureKeepsEdit(t *testing.T) {
	ctx := context.Background()
	repo := newMockSnapshotRepo()
	repo.putErr = errDisk
	bridge := NewBridge(repo, DefaultSessionID, testKey)
	svc := NewCatalogService(ctx, bridge, nil)

	assert.True(t, svc.UpdatePrice(ctx, "7", 1))

	got, _ := svc.Current().Find("7")
	assert.Equal(t, float64(1), got.Price)
	fromBridge, _ := bridge.Load(ctx).Find("7")
	assert.Equal(t, float64(1), fromBridge.Price, "secondary copy serves the edit")
}

func TestCatalogService_ResetIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(ctx, NewBridge(newMockSnapshotRepo(), DefaultSessionID, testKey), nil)

	svc.ResetToDefaults(ctx)
	first := svc.Current()
	svc.ResetToDefaults(ctx)
	assert.Equal(t, first, svc.Current())
	assert.Equal(t, domain.DefaultCatalog(), first)
}

func TestCatalogService_Reload(t *testing.T) {
	ctx := context.Background()
	repo := newMockSnapshotRepo()
	svc := NewCatalogService(ctx, NewBridge(repo, DefaultSessionID, testKey), nil)

	other := NewCatalogService(ctx, NewBridge(repo, DefaultSessionID, testKey), nil)
	other.UpdatePrice(ctx, "9", 15000)

	got, _ := svc.Reload(ctx).Find("9")
	assert.Equal(t, float64(15000), got.Price)
}

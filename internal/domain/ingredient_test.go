package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cat := DefaultCatalog()
	require.Len(t, cat, 18)
	require.NoError(t, cat.Validate())

	cheese, ok := cat.Find("7")
	require.True(t, ok)
	assert.Equal(t, "ឈីស", cheese.Name)
	assert.Equal(t, float64(86000), cheese.Price)

	_, ok = cat.Find("14")
	assert.False(t, ok)

	// callers cannot mutate the compiled-in set
	cat[0].Price = 1
	assert.Equal(t, float64(3500), DefaultCatalog()[0].Price)
}

func TestCatalog_WithPrice(t *testing.T) {
	cat := DefaultCatalog()

	updated, found := cat.WithPrice("7", 90000)
	require.True(t, found)

	got, _ := updated.Find("7")
	assert.Equal(t, float64(90000), got.Price)
	assert.Equal(t, float64(86000), cat[6].Price, "input untouched")

	for i := range cat {
		assert.Equal(t, cat[i].ID, updated[i].ID, "order preserved")
		if cat[i].ID != "7" {
			assert.Equal(t, cat[i], updated[i])
		}
	}
}

func TestCatalog_WithPriceUnknownID(t *testing.T) {
	cat := DefaultCatalog()
	updated, found := cat.WithPrice("nope", 5)
	assert.False(t, found)
	assert.True(t, updated.Equal(cat))
}

func TestCatalog_WithPriceCoercesNegative(t *testing.T) {
	updated, _ := DefaultCatalog().WithPrice("1", -50)
	got, _ := updated.Find("1")
	assert.Zero(t, got.Price)
}

func TestCatalog_Validate(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
		wantErr bool
	}{
		{"empty", Catalog{}, false},
		{"ok", Catalog{{ID: "1", Name: "A", Price: 0}}, false},
		{"missing id", Catalog{{Name: "A"}}, true},
		{"blank name", Catalog{{ID: "1", Name: "  "}}, true},
		{"negative", Catalog{{ID: "1", Name: "A", Price: -1}}, true},
		{"duplicate", Catalog{{ID: "1", Name: "A"}, {ID: "1", Name: "B"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParsePrice(t *testing.T) {
	assert.Equal(t, 12.5, ParsePrice("12.5"))
	assert.Equal(t, float64(90000), ParsePrice(" 90000 "))
	assert.Zero(t, ParsePrice(""))
	assert.Zero(t, ParsePrice("abc"))
	assert.Zero(t, ParsePrice("-4"))
	assert.Zero(t, ParsePrice("NaN"))
	assert.Zero(t, ParsePrice("Inf"))
	assert.Zero(t, CoercePrice(math.Inf(1)))
}

func TestParseQuantity(t *testing.T) {
	assert.Equal(t, 3, ParseQuantity("3"))
	assert.Equal(t, 2, ParseQuantity("2.7"))
	assert.Equal(t, 0, ParseQuantity("-2"))
	assert.Equal(t, 0, ParseQuantity("-0.5"))
	assert.Equal(t, 0, ParseQuantity("x"))
	assert.Equal(t, 0, ParseQuantity(""))
	assert.Equal(t, 5, ParseQuantity("5abc"))
	assert.Equal(t, 1, ParseQuantity("1e3"))
	assert.Equal(t, 4, ParseQuantity(" +4 "))
	assert.Equal(t, 0, ParseQuantity("-"))
	assert.Equal(t, math.MaxInt32, ParseQuantity("99999999999"))
}

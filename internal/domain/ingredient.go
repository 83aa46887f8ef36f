package domain

import (
	"fmt"
	"strings"
)

// Ingredient is one priced entry in the price list
type Ingredient struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Catalog is the ordered price list. Order drives display and line item order.
type Catalog []Ingredient

var defaultIngredients = Catalog{
	{ID: "1", Name: " នំធំ ", Price: 3500},
	{ID: "2", Name: "នំកណ្ដាល", Price: 2500},
	{ID: "3", Name: "នំតូច", Price: 1800},
	{ID: "4", Name: "ប្រអប់ធំ", Price: 1000},
	{ID: "5", Name: "ប្រអប់តួច", Price: 700},
	{ID: "6", Name: "ប្រអប់កណ្ដាល", Price: 900},
	{ID: "7", Name: "ឈីស", Price: 86000},
	{ID: "8", Name: "ម៉ាញ់យ៉ានេស", Price: 7500},
	{ID: "9", Name: "ហរដក់", Price: 14000},
	{ID: "10", Name: "ប្រហិតមឹក", Price: 10000},
	{ID: "11", Name: "ប្រហិតក្ដាម", Price: 10000},
	{ID: "12", Name: "ពោត", Price: 4000},
	{ID: "13", Name: "ទឹកជ្រលក់ម្ទេស", Price: 13500},
	{ID: "15", Name: "ទឹកជ្រលក់ប៉េងប៉ោះ", Price: 13500},
	{ID: "16", Name: "ថង់តូច", Price: 7000},
	{ID: "17", Name: "ថង់ធំ", Price: 7000},
	{ID: "18", Name: "បង្គារ", Price: 30000},
	{ID: "19", Name: "ទឹកលាបនំ", Price: 10000},
}

// DefaultCatalog returns a fresh copy of the compiled-in price list
func DefaultCatalog() Catalog {
	return defaultIngredients.Clone()
}

// Clone returns a copy that shares no backing array with c
func (c Catalog) Clone() Catalog {
	if c == nil {
		return nil
	}
	out := make(Catalog, len(c))
	copy(out, c)
	return out
}

// Find returns the ingredient with the given id
func (c Catalog) Find(id string) (Ingredient, bool) {
	for _, ing := range c {
		if ing.ID == id {
			return ing, true
		}
	}
	return Ingredient{}, false
}

// WithPrice returns a copy of c with the price of id replaced.
// Every other entry and the order are untouched. An unknown id yields an
// unchanged copy and false.
func (c Catalog) WithPrice(id string, price float64) (Catalog, bool) {
	out := c.Clone()
	found := false
	for i := range out {
		if out[i].ID == id {
			out[i].Price = CoercePrice(price)
			found = true
		}
	}
	return out, found
}

// Equal reports whether both catalogs hold the same entries in the same order
func (c Catalog) Equal(other Catalog) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// Validate returns an error if the catalog breaks an ingredient invariant
func (c Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c))
	for i, ing := range c {
		if ing.ID == "" {
			return fmt.Errorf("ingredient %d: id is required", i)
		}
		if _, dup := seen[ing.ID]; dup {
			return fmt.Errorf("ingredient %d: duplicate id %q", i, ing.ID)
		}
		seen[ing.ID] = struct{}{}

		if strings.TrimSpace(ing.Name) == "" {
			return fmt.Errorf("ingredient %q: name is required", ing.ID)
		}
		if ing.Price < 0 {
			return fmt.Errorf("ingredient %q: price cannot be negative", ing.ID)
		}
	}
	return nil
}

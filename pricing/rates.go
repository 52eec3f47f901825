package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/junaidrashid-git/nursery-store/models"
)

// Rates holds the shipping table and the pricing fallbacks.
type Rates struct {
	FreeShippingThreshold int64
	ScaleBySize           bool
	DefaultRate           int64
	CategoryRates         map[models.Category]int64
	DefaultBasePrice      decimal.Decimal
}

// DefaultRates is the table the storefront ships with. Large cacti and trees
// cost the most to pack; cuttings and seeds travel in an envelope.
func DefaultRates() Rates {
	return Rates{
		FreeShippingThreshold: 200,
		ScaleBySize:           true,
		DefaultRate:           30,
		CategoryRates: map[models.Category]int64{
			models.CategoryCacti:      45,
			models.CategoryAgaves:     40,
			models.CategorySucculents: 25,
			models.CategoryCuttings:   15,
			models.CategorySeeds:      8,
			models.CategoryTropicals:  35,
			models.CategoryTrees:      50,
			models.CategoryOther:      30,
		},
		DefaultBasePrice: decimal.NewFromInt(25),
	}
}

// RateFor returns the flat shipping rate of a category.
func (r Rates) RateFor(category models.Category) int64 {
	if rate, ok := r.CategoryRates[category]; ok {
		return rate
	}
	return r.DefaultRate
}

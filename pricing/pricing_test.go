package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/nursery-store/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func size(multiplier string) models.Size {
	return models.Size{ID: "s", Label: "S", Multiplier: dec(multiplier)}
}

func TestDiscountFactor(t *testing.T) {
	tests := []struct {
		quantity int
		want     string
	}{
		{1, "1"},
		{2, "0.95"},
		{3, "0.90"},
		{4, "0.90"},
		{10, "0.90"},
	}
	for _, tt := range tests {
		got := DiscountFactor(tt.quantity)
		assert.Truef(t, got.Equal(dec(tt.want)), "quantity %d: got %s want %s", tt.quantity, got, tt.want)
	}
}

func TestRoundUnits(t *testing.T) {
	assert.Equal(t, int64(176), RoundUnits(dec("175.5")))
	assert.Equal(t, int64(175), RoundUnits(dec("175.49")))
	assert.Equal(t, int64(1), RoundUnits(dec("0.5")))
	assert.Equal(t, int64(200), RoundUnits(dec("199.999")))
}

func TestQuote_SizeMultiplierWithBulkDiscount(t *testing.T) {
	calc := NewCalculator(DefaultRates())

	q := calc.Quote(Input{BasePrice: dec("50"), Size: size("1.3"), Category: models.CategoryCacti, Quantity: 3})

	assert.True(t, q.SizeAdjustedPrice.Equal(dec("65")), "size adjusted price %s", q.SizeAdjustedPrice)
	assert.True(t, q.DiscountFactor.Equal(dec("0.9")))
	assert.Equal(t, int64(176), q.Subtotal, "round(175.5) rounds half up")
	// 45 * 1.3 = 58.5
	assert.Equal(t, int64(59), q.ShippingCost)
	assert.Equal(t, int64(235), q.GrandTotal)
	assert.False(t, q.PriceFallback)
}

func TestQuote_DiscountTierBoundaries(t *testing.T) {
	calc := NewCalculator(DefaultRates())
	tests := []struct {
		quantity int
		subtotal int64
	}{
		{1, 20},
		{2, 38},
		{3, 54},
		{4, 72},
	}
	for _, tt := range tests {
		q := calc.Quote(Input{BasePrice: dec("20"), Size: models.StandardSize(), Category: models.CategorySeeds, Quantity: tt.quantity})
		assert.Equalf(t, tt.subtotal, q.Subtotal, "quantity %d", tt.quantity)
	}
}

func TestQuote_FreeShippingBoundary(t *testing.T) {
	calc := NewCalculator(DefaultRates())
	tests := []struct {
		price    string
		shipping int64
	}{
		{"199", 45},
		{"200", 0},
		{"201", 0},
	}
	for _, tt := range tests {
		q := calc.Quote(Input{BasePrice: dec(tt.price), Size: models.StandardSize(), Category: models.CategoryCacti, Quantity: 1})
		assert.Equalf(t, tt.shipping, q.ShippingCost, "subtotal %s", tt.price)
	}
}

func TestQuote_ShippingIgnoresCategoryAboveThreshold(t *testing.T) {
	calc := NewCalculator(DefaultRates())
	for _, category := range models.Categories {
		q := calc.Quote(Input{BasePrice: dec("250"), Size: models.StandardSize(), Category: category, Quantity: 1})
		assert.Zerof(t, q.ShippingCost, "category %s", category)
	}
}

func TestQuote_ClampsQuantity(t *testing.T) {
	calc := NewCalculator(DefaultRates())
	for _, quantity := range []int{0, -1, -40} {
		q := calc.Quote(Input{BasePrice: dec("30"), Size: models.StandardSize(), Category: models.CategoryOther, Quantity: quantity})
		assert.Equal(t, 1, q.Quantity)
		assert.Equal(t, int64(30), q.Subtotal)
	}
}

func TestQuote_NonPositiveBasePriceFallsBack(t *testing.T) {
	rates := DefaultRates()
	calc := NewCalculator(rates)

	q := calc.Quote(Input{BasePrice: decimal.Zero, Size: models.StandardSize(), Category: models.CategoryOther, Quantity: 1})

	assert.True(t, q.PriceFallback)
	assert.True(t, q.BasePrice.Equal(rates.DefaultBasePrice))
	assert.Equal(t, int64(25), q.Subtotal)
}

func TestQuote_AbsoluteSizePrice(t *testing.T) {
	calc := NewCalculator(DefaultRates())
	price := dec("42.50")
	s := models.Size{ID: "5-gallon", Label: "5 Gallon", Multiplier: dec("2"), Price: &price}

	q := calc.Quote(Input{BasePrice: dec("20"), Size: s, Category: models.CategoryAgaves, Quantity: 2})

	assert.True(t, q.SizeAdjustedPrice.Equal(price))
	// 42.50 * 2 * 0.95 = 80.75
	assert.Equal(t, int64(81), q.Subtotal)
	assert.Equal(t, int64(80), q.ShippingCost)
}

func TestQuote_InvalidMultiplierTreatedAsOne(t *testing.T) {
	calc := NewCalculator(DefaultRates())

	q := calc.Quote(Input{BasePrice: dec("10"), Size: size("0"), Category: models.CategoryCuttings, Quantity: 1})

	assert.True(t, q.Multiplier.Equal(dec("1")))
	assert.Equal(t, int64(10), q.Subtotal)
	assert.Equal(t, int64(15), q.ShippingCost)
}

func TestShipping_WithoutSizeScaling(t *testing.T) {
	rates := DefaultRates()
	rates.ScaleBySize = false
	calc := NewCalculator(rates)

	assert.Equal(t, int64(50), calc.Shipping(models.CategoryTrees, dec("2.5"), 120))
	assert.Equal(t, int64(30), calc.Shipping(models.Category("bonsai"), dec("1"), 10))
}

func TestSizesFromLabels(t *testing.T) {
	sizes := SizesFromLabels([]string{`4" Pot`, "1 Gallon", "1 gallon", "5 Gallon", "15 Gallon", "24in Box", "36in Box"})

	require.Len(t, sizes, 6)
	assert.Equal(t, "4-pot", sizes[0].ID)
	assert.Equal(t, "1-gallon", sizes[1].ID)
	assert.True(t, sizes[1].Multiplier.Equal(dec("1.3")))
	assert.True(t, sizes[4].Multiplier.Equal(dec("2.5")))
	assert.True(t, sizes[5].Multiplier.Equal(dec("2.5")))
}

func TestSizeID(t *testing.T) {
	assert.Equal(t, "1-gallon-6", SizeID(`1 Gallon (6")`))
	assert.Equal(t, "2-5-inch", SizeID("2.5 inch"))
	assert.Equal(t, "", SizeID("  --  "))
}

// Package pricing computes what a plant costs in a given size and quantity,
// including the quantity discount and the shipping charge.
//
// All arithmetic is decimal. Results are rounded to whole currency units with
// half away from zero, which is round-half-up for every amount a shopper can
// produce: 175.5 becomes 176.
package pricing

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/nursery-store/models"
)

var (
	one          = decimal.NewFromInt(1)
	pairDiscount = decimal.RequireFromString("0.95")
	bulkDiscount = decimal.RequireFromString("0.90")
)

// Input is everything the calculator needs to price one cart line.
type Input struct {
	BasePrice decimal.Decimal
	Size      models.Size
	Category  models.Category
	Quantity  int
}

// Quote is the priced result for one product, size and quantity.
type Quote struct {
	BasePrice         decimal.Decimal `json:"base_price"`
	Multiplier        decimal.Decimal `json:"multiplier"`
	SizeAdjustedPrice decimal.Decimal `json:"size_adjusted_price"`
	Quantity          int             `json:"quantity"`
	DiscountFactor    decimal.Decimal `json:"discount_factor"`
	Subtotal          int64           `json:"subtotal"`
	ShippingCost      int64           `json:"shipping_cost"`
	GrandTotal        int64           `json:"grand_total"`
	PriceFallback     bool            `json:"price_fallback,omitempty"`
}

// Calculator prices cart lines against a shipping rate table.
type Calculator struct {
	rates  Rates
	logger *zap.Logger
}

type Option func(*Calculator)

// WithLogger sets the logger used to report bad catalog data.
func WithLogger(l *zap.Logger) Option {
	return func(c *Calculator) {
		c.logger = l
	}
}

func NewCalculator(rates Rates, opts ...Option) *Calculator {
	c := &Calculator{rates: rates, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Rates returns the rate table the calculator was built with.
func (c *Calculator) Rates() Rates {
	return c.rates
}

// DiscountFactor returns the quantity discount. The tiers are fixed: one plant
// pays full price, two get 5% off, three or more get 10% off.
func DiscountFactor(quantity int) decimal.Decimal {
	switch {
	case quantity >= 3:
		return bulkDiscount
	case quantity == 2:
		return pairDiscount
	default:
		return one
	}
}

// RoundUnits rounds to whole currency units, half away from zero.
func RoundUnits(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// Quote prices in. It never fails: a quantity below one is clamped to one and
// a non-positive base price falls back to the configured default.
func (c *Calculator) Quote(in Input) Quote {
	q := Quote{
		BasePrice: in.BasePrice,
		Quantity:  in.Quantity,
	}
	if q.Quantity < 1 {
		q.Quantity = 1
	}
	if !q.BasePrice.IsPositive() {
		c.logger.Warn("non-positive base price, using default",
			zap.String("size_id", in.Size.ID),
			zap.String("base_price", in.BasePrice.String()),
			zap.String("default_price", c.rates.DefaultBasePrice.String()))
		q.BasePrice = c.rates.DefaultBasePrice
		q.PriceFallback = true
	}

	q.Multiplier = c.multiplier(in.Size)
	q.SizeAdjustedPrice = q.BasePrice.Mul(q.Multiplier)
	if in.Size.Price != nil && in.Size.Price.IsPositive() {
		q.SizeAdjustedPrice = *in.Size.Price
	}

	q.DiscountFactor = DiscountFactor(q.Quantity)
	q.Subtotal = RoundUnits(q.SizeAdjustedPrice.Mul(decimal.NewFromInt(int64(q.Quantity))).Mul(q.DiscountFactor))
	q.ShippingCost = c.Shipping(in.Category, q.Multiplier, q.Subtotal)
	q.GrandTotal = q.Subtotal + q.ShippingCost
	return q
}

// Shipping returns the charge for a line or cart with the given subtotal.
func (c *Calculator) Shipping(category models.Category, multiplier decimal.Decimal, subtotal int64) int64 {
	if subtotal >= c.rates.FreeShippingThreshold {
		return 0
	}
	rate := decimal.NewFromInt(c.rates.RateFor(category))
	if c.rates.ScaleBySize && multiplier.IsPositive() {
		rate = rate.Mul(multiplier)
	}
	return RoundUnits(rate)
}

func (c *Calculator) multiplier(s models.Size) decimal.Decimal {
	if s.Multiplier.IsPositive() {
		return s.Multiplier
	}
	if s.Price == nil {
		c.logger.Warn("size has no positive multiplier, using 1",
			zap.String("size_id", s.ID),
			zap.String("multiplier", s.Multiplier.String()))
	}
	return one
}

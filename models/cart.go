package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is the persisted copy of a shopper's cart. Items are stored as one
// JSON document so the whole cart is written at once.
type Cart struct {
	SessionID string     `gorm:"primaryKey" json:"session_id"`
	Items     []CartItem `gorm:"type:jsonb;serializer:json" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is a product+size line with the prices computed when it was last
// changed. Amounts are whole currency units.
type CartItem struct {
	ID           string          `json:"id"` // <product_id>:<size_id>
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Category     Category        `json:"category"`
	ImageURL     string          `json:"image_url,omitempty"`
	Size         Size            `json:"size"`
	BasePrice    decimal.Decimal `json:"base_price"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Subtotal     int64           `json:"subtotal"`
	ShippingCost int64           `json:"shipping_cost"`
	AddedAt      time.Time       `json:"added_at"`
}

// CartItemID builds the identity key of a cart line.
func CartItemID(productID, sizeID string) string {
	return productID + ":" + sizeID
}

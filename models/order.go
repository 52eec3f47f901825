package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed" // Paid, waiting to ship
	OrderStatusShipped   OrderStatus = "shipped"   // Handed to the carrier
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the plants

	PaymentStatusPaid              PaymentStatus = "paid"
	PaymentStatusUnpaid            PaymentStatus = "unpaid"
	PaymentStatusNoPaymentRequired PaymentStatus = "no_payment_required"
)

// OrderStatuses lists fulfillment states in the only order they may be reached.
var OrderStatuses = []OrderStatus{OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered}

type Order struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	OrderRef        string        `gorm:"uniqueIndex;not null" json:"order_ref"`
	SessionID       string        `gorm:"uniqueIndex;not null" json:"session_id"`
	CustomerName    string        `gorm:"index" json:"customer_name"`
	CustomerEmail   string        `gorm:"index" json:"customer_email"`
	CustomerPhone   string        `json:"customer_phone,omitempty"`
	ShippingAddress Address       `gorm:"embedded;embeddedPrefix:ship_" json:"shipping_address"`
	TotalAmount     int64         `gorm:"not null" json:"total_amount"` // minor units
	ShippingAmount  int64         `json:"shipping_amount"`
	Currency        string        `gorm:"type:VARCHAR(3);not null" json:"currency"`
	PaymentStatus   PaymentStatus `gorm:"type:VARCHAR(32);not null" json:"payment_status"`
	Status          OrderStatus   `gorm:"column:order_status;type:VARCHAR(20);default:'confirmed';index" json:"order_status"`
	Items           []OrderItem   `gorm:"type:jsonb;serializer:json" json:"items"`
	TrackingNumber  string        `json:"tracking_number,omitempty"`
	Carrier         string        `json:"carrier,omitempty"`
	ShippedAt       *time.Time    `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time    `json:"delivered_at,omitempty"`
	CreatedAt       time.Time     `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// OrderItem is the snapshot of a paid line as the payment gateway confirmed it.
type OrderItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Quantity    int64  `json:"quantity"`
	UnitAmount  int64  `json:"unit_amount"`
	AmountTotal int64  `json:"amount_total"`
}

type Address struct {
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

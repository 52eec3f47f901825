package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/junaidrashid-git/nursery-store/models"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// Shipment is what the shop enters when handing an order to a carrier.
type Shipment struct {
	TrackingNumber string `json:"tracking_number"`
	Carrier        string `json:"carrier"`
}

type Page struct {
	Orders []models.Order `json:"orders"`
	Total  int64          `json:"total"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
}

// Admin is the back office view of orders.
type Admin struct {
	repo     Repository
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
}

func NewAdmin(repo Repository, notifier Notifier, logger *zap.Logger) *Admin {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Admin{repo: repo, notifier: notifier, logger: logger, now: time.Now}
}

func (a *Admin) List(ctx context.Context, q ListQuery) (Page, error) {
	q = q.Normalize()
	if q.Status != "" && !validStatus(q.Status) {
		return Page{}, &models.FieldError{Field: "status", Message: fmt.Sprintf("unknown status %q", q.Status)}
	}
	orders, total, err := a.repo.List(ctx, q)
	if err != nil {
		return Page{}, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return Page{Orders: orders, Total: total, Page: q.Page, Limit: q.Limit}, nil
}

func (a *Admin) Stats(ctx context.Context) (Stats, error) {
	return a.repo.Stats(ctx)
}

func (a *Admin) Get(ctx context.Context, id uint) (models.Order, error) {
	return a.repo.Get(ctx, id)
}

// AdvanceStatus moves an order one step forward. Orders only go
// confirmed -> shipped -> delivered; shipping needs a tracking number and a
// carrier and emails the customer.
func (a *Admin) AdvanceStatus(ctx context.Context, id uint, status models.OrderStatus, shipment Shipment) (models.Order, error) {
	if !validStatus(status) {
		return models.Order{}, &models.FieldError{Field: "status", Message: fmt.Sprintf("unknown status %q", status)}
	}
	order, err := a.repo.Get(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	if next, ok := nextStatus(order.Status); !ok || next != status {
		return models.Order{}, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, order.Status, status)
	}

	now := a.now()
	switch status {
	case models.OrderStatusShipped:
		shipment.TrackingNumber = strings.TrimSpace(shipment.TrackingNumber)
		shipment.Carrier = strings.TrimSpace(shipment.Carrier)
		if shipment.TrackingNumber == "" {
			return models.Order{}, &models.FieldError{Field: "tracking_number", Message: "tracking_number is required to ship"}
		}
		if shipment.Carrier == "" {
			return models.Order{}, &models.FieldError{Field: "carrier", Message: "carrier is required to ship"}
		}
		order.TrackingNumber = shipment.TrackingNumber
		order.Carrier = shipment.Carrier
		order.ShippedAt = &now
	case models.OrderStatusDelivered:
		order.DeliveredAt = &now
	}
	order.Status = status

	if err := a.repo.Update(ctx, &order); err != nil {
		return models.Order{}, err
	}
	a.logger.Info("📦 order status changed", zap.String("order_ref", order.OrderRef), zap.String("status", string(status)))

	if status == models.OrderStatusShipped {
		if _, err := a.notifier.ShipmentNotice(ctx, order); err != nil {
			a.logger.Error("❌ shipment email failed", zap.String("order_ref", order.OrderRef), zap.Error(err))
		}
	}
	return order, nil
}

func validStatus(s models.OrderStatus) bool {
	for _, known := range models.OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func nextStatus(s models.OrderStatus) (models.OrderStatus, bool) {
	for i, known := range models.OrderStatuses {
		if s == known && i+1 < len(models.OrderStatuses) {
			return models.OrderStatuses[i+1], true
		}
	}
	return "", false
}

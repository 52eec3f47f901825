// Package orders records paid checkouts and moves them through fulfillment.
package orders

import (
	"context"
	"errors"
	"time"

	"github.com/junaidrashid-git/nursery-store/models"
)

var (
	ErrNotFound         = errors.New("order not found")
	ErrDuplicateSession = errors.New("order already recorded for this checkout session")
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ListQuery selects one page of orders, newest first.
type ListQuery struct {
	Page   int
	Limit  int
	Status models.OrderStatus
	Search string // substring of customer email or name, any case
}

// Normalize applies the paging defaults and bounds.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}

func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

type Stats struct {
	TotalOrders int64                        `json:"total_orders"`
	Revenue     int64                        `json:"revenue"` // minor units
	ByStatus    map[models.OrderStatus]int64 `json:"by_status"`
}

type Repository interface {
	// Create returns ErrDuplicateSession when the session already has an order.
	Create(ctx context.Context, order *models.Order) error
	FindBySession(ctx context.Context, sessionID string) (models.Order, error)
	Get(ctx context.Context, id uint) (models.Order, error)
	Update(ctx context.Context, order *models.Order) error
	List(ctx context.Context, q ListQuery) ([]models.Order, int64, error)
	Stats(ctx context.Context) (Stats, error)

	RecordStep(ctx context.Context, step models.OrderStep) error
	StepSucceeded(ctx context.Context, sessionID string, step models.StepName) (bool, error)
	Steps(ctx context.Context, sessionID string) ([]models.OrderStep, error)

	// ClaimStep takes claim.Step for claim.SessionID. It reports false while
	// another caller holds a claim made at or after staleBefore.
	ClaimStep(ctx context.Context, claim models.StepClaim, staleBefore time.Time) (bool, error)
	ReleaseStep(ctx context.Context, sessionID string, step models.StepName) error
}

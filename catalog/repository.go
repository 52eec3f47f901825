// Package catalog reads and maintains the plant catalog.
package catalog

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/junaidrashid-git/nursery-store/models"
)

var ErrNotFound = errors.New("product not found")

// Filter narrows a catalog listing. Zero values mean "any".
type Filter struct {
	Category    models.Category
	Search      string
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	Featured    *bool
	InStockOnly bool
	SortBy      string // name | price | created_at
	Descending  bool
}

// SortColumn returns a whitelisted column for SortBy.
func (f Filter) SortColumn() string {
	switch f.SortBy {
	case "name", "price":
		return f.SortBy
	default:
		return "created_at"
	}
}

type Repository interface {
	List(ctx context.Context, f Filter) ([]models.Product, error)
	Get(ctx context.Context, id string) (models.Product, error)
	// Save inserts the product or overwrites the one with the same id.
	Save(ctx context.Context, p *models.Product) (created bool, err error)
	Delete(ctx context.Context, id string) error
	// ReplaceAll swaps the whole catalog for products.
	ReplaceAll(ctx context.Context, products []models.Product) error
	CountByCategory(ctx context.Context) (map[models.Category]int64, error)
}

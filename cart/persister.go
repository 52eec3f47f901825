package cart

import (
	"context"

	"github.com/junaidrashid-git/nursery-store/models"
)

// Persister keeps the durable copy of every shopper's cart. Save replaces the
// stored list; the last writer wins when one shopper has several tabs open.
type Persister interface {
	Load(ctx context.Context, sessionID string) ([]models.CartItem, error)
	Save(ctx context.Context, sessionID string, items []models.CartItem) error
	Delete(ctx context.Context, sessionID string) error
}

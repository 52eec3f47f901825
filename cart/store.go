// Package cart owns the line items of one shopper session and keeps their
// prices current. Every change is written through to a Persister before the
// call returns.
package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/junaidrashid-git/nursery-store/models"
	"github.com/junaidrashid-git/nursery-store/pricing"
)

// Totals is derived from the items on every read and never stored.
type Totals struct {
	ItemCount    int   `json:"item_count"`
	Subtotal     int64 `json:"subtotal"`
	Shipping     int64 `json:"shipping"`
	Total        int64 `json:"total"`
	FreeShipping bool  `json:"free_shipping"`
}

// Store is the cart of a single shopper session.
type Store struct {
	sessionID string
	items     []models.CartItem
	persister Persister
	calc      *pricing.Calculator
	now       func() time.Time
}

// Open loads the persisted cart of sessionID.
func Open(ctx context.Context, sessionID string, p Persister, calc *pricing.Calculator) (*Store, error) {
	items, err := p.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return &Store{
		sessionID: sessionID,
		items:     items,
		persister: p,
		calc:      calc,
		now:       time.Now,
	}, nil
}

func (s *Store) SessionID() string {
	return s.sessionID
}

// Items returns a copy of the lines in the order they were first added.
func (s *Store) Items() []models.CartItem {
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Empty() bool {
	return len(s.items) == 0
}

// AddItem adds quantity of product in the given size. Adding a product+size
// that is already in the cart raises its quantity instead of adding a line.
func (s *Store) AddItem(ctx context.Context, product models.Product, sizeID string, quantity int) (models.CartItem, error) {
	if !product.InStock {
		return models.CartItem{}, ErrOutOfStock
	}
	size, ok := product.FindSize(sizeID)
	if !ok {
		return models.CartItem{}, ErrUnknownSize
	}
	if quantity < 1 {
		quantity = 1
	}

	id := models.CartItemID(product.ID, size.ID)
	if i := s.index(id); i >= 0 {
		item := s.items[i]
		item.ProductName = product.Name
		item.ImageURL = product.ImageURL
		item.BasePrice = product.Price
		item.Size = size
		s.items[i] = s.price(item, item.Quantity+quantity)
		return s.items[i], s.save(ctx)
	}

	item := s.price(models.CartItem{
		ID:          id,
		ProductID:   product.ID,
		ProductName: product.Name,
		Category:    product.Category,
		ImageURL:    product.ImageURL,
		Size:        size,
		BasePrice:   product.Price,
		AddedAt:     s.now(),
	}, quantity)
	s.items = append(s.items, item)
	return item, s.save(ctx)
}

// RemoveItem deletes the line with the given id.
func (s *Store) RemoveItem(ctx context.Context, id string) error {
	i := s.index(id)
	if i < 0 {
		return ErrItemNotFound
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return s.save(ctx)
}

// UpdateQuantity sets the quantity of a line. Zero or less removes it, in
// which case the returned item is the zero value.
func (s *Store) UpdateQuantity(ctx context.Context, id string, quantity int) (models.CartItem, error) {
	if quantity <= 0 {
		return models.CartItem{}, s.RemoveItem(ctx, id)
	}
	i := s.index(id)
	if i < 0 {
		return models.CartItem{}, ErrItemNotFound
	}
	s.items[i] = s.price(s.items[i], quantity)
	return s.items[i], s.save(ctx)
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	s.items = nil
	return s.save(ctx)
}

// Totals sums the line subtotals and charges one shipment at the most
// expensive line rate, waived once the cart reaches the free threshold.
func (s *Store) Totals() Totals {
	return Summarize(s.items, s.calc.Rates().FreeShippingThreshold)
}

// Summarize computes Totals for a list of priced lines.
func Summarize(items []models.CartItem, freeThreshold int64) Totals {
	var t Totals
	for _, item := range items {
		t.ItemCount += item.Quantity
		t.Subtotal += item.Subtotal
		if item.ShippingCost > t.Shipping {
			t.Shipping = item.ShippingCost
		}
	}
	if len(items) > 0 && t.Subtotal >= freeThreshold {
		t.Shipping = 0
		t.FreeShipping = true
	}
	t.Total = t.Subtotal + t.Shipping
	return t
}

func (s *Store) price(item models.CartItem, quantity int) models.CartItem {
	q := s.calc.Quote(pricing.Input{
		BasePrice: item.BasePrice,
		Size:      item.Size,
		Category:  item.Category,
		Quantity:  quantity,
	})
	item.Quantity = q.Quantity
	item.BasePrice = q.BasePrice
	item.UnitPrice = q.SizeAdjustedPrice
	item.Subtotal = q.Subtotal
	item.ShippingCost = q.ShippingCost
	return item
}

func (s *Store) index(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) save(ctx context.Context) error {
	if err := s.persister.Save(ctx, s.sessionID, s.items); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

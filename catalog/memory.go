package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/junaidrashid-git/nursery-store/models"
)

// MemoryRepository is a Repository for tests and local runs without a database.
type MemoryRepository struct {
	mu       sync.RWMutex
	products map[string]models.Product
	now      func() time.Time
}

func NewMemoryRepository(products ...models.Product) *MemoryRepository {
	r := &MemoryRepository{products: make(map[string]models.Product), now: time.Now}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *MemoryRepository) List(_ context.Context, f Filter) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(f.Search))
	var out []models.Product
	for _, p := range r.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.ScientificName), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
			continue
		}
		if f.Featured != nil && p.Featured != *f.Featured {
			continue
		}
		if f.InStockOnly && !p.InStock {
			continue
		}
		out = append(out, p)
	}

	column := f.SortColumn()
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if f.Descending {
			a, b = b, a
		}
		switch column {
		case "name":
			return a.Name < b.Name
		case "price":
			return a.Price.LessThan(b.Price)
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	})
	return out, nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

func (r *MemoryRepository) Save(_ context.Context, p *models.Product) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	existing, ok := r.products[p.ID]
	if ok {
		p.CreatedAt = existing.CreatedAt
	} else {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	r.products[p.ID] = *p
	return !ok, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *MemoryRepository) ReplaceAll(_ context.Context, products []models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = make(map[string]models.Product, len(products))
	for _, p := range products {
		r.products[p.ID] = p
	}
	return nil
}

func (r *MemoryRepository) CountByCategory(_ context.Context) (map[models.Category]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := make(map[models.Category]int64)
	for _, p := range r.products {
		counts[p.Category]++
	}
	return counts, nil
}

package orders

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/junaidrashid-git/nursery-store/models"
)

// MemoryRepository keeps orders in process for tests and local runs.
type MemoryRepository struct {
	mu     sync.Mutex
	orders []models.Order
	steps  []models.OrderStep
	claims map[claimKey]time.Time
	now    func() time.Time
}

type claimKey struct {
	sessionID string
	step      models.StepName
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{claims: make(map[claimKey]time.Time), now: time.Now}
}

func (r *MemoryRepository) Create(_ context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.SessionID == order.SessionID {
			return ErrDuplicateSession
		}
	}
	order.ID = uint(len(r.orders) + 1)
	now := r.now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now
	r.orders = append(r.orders, *order)
	return nil
}

func (r *MemoryRepository) FindBySession(_ context.Context, sessionID string) (models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.SessionID == sessionID {
			return o, nil
		}
	}
	return models.Order{}, ErrNotFound
}

func (r *MemoryRepository) Get(_ context.Context, id uint) (models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrNotFound
}

func (r *MemoryRepository) Update(_ context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, o := range r.orders {
		if o.ID == order.ID {
			order.UpdatedAt = r.now()
			r.orders[i] = *order
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryRepository) List(_ context.Context, q ListQuery) ([]models.Order, int64, error) {
	q = q.Normalize()
	r.mu.Lock()
	defer r.mu.Unlock()

	search := strings.ToLower(strings.TrimSpace(q.Search))
	var matched []models.Order
	for _, o := range r.orders {
		if q.Status != "" && o.Status != q.Status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(o.CustomerEmail), search) &&
			!strings.Contains(strings.ToLower(o.CustomerName), search) {
			continue
		}
		matched = append(matched, o)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := q.Offset()
	if start >= len(matched) {
		return []models.Order{}, total, nil
	}
	end := start + q.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *MemoryRepository) Stats(_ context.Context) (Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := Stats{ByStatus: make(map[models.OrderStatus]int64)}
	for _, o := range r.orders {
		stats.TotalOrders++
		stats.Revenue += o.TotalAmount
		stats.ByStatus[o.Status]++
	}
	return stats, nil
}

func (r *MemoryRepository) RecordStep(_ context.Context, step models.OrderStep) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	step.ID = uint(len(r.steps) + 1)
	if step.CreatedAt.IsZero() {
		step.CreatedAt = r.now()
	}
	r.steps = append(r.steps, step)
	return nil
}

func (r *MemoryRepository) StepSucceeded(_ context.Context, sessionID string, step models.StepName) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.steps {
		if s.SessionID == sessionID && s.Step == step && s.Outcome == models.StepSucceeded {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepository) Steps(_ context.Context, sessionID string) ([]models.OrderStep, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.OrderStep
	for _, s := range r.steps {
		if s.SessionID == sessionID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *MemoryRepository) ClaimStep(_ context.Context, claim models.StepClaim, staleBefore time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := claimKey{claim.SessionID, claim.Step}
	if at, ok := r.claims[key]; ok && !at.Before(staleBefore) {
		return false, nil
	}
	r.claims[key] = claim.ClaimedAt
	return true, nil
}

func (r *MemoryRepository) ReleaseStep(_ context.Context, sessionID string, step models.StepName) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.claims, claimKey{sessionID, step})
	return nil
}

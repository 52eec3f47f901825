package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/junaidrashid-git/nursery-store/models"
)

// MemoryPersister keeps carts as encoded JSON documents, the same shape the
// database adapter stores, so a load never aliases a previous save.
type MemoryPersister struct {
	mu    sync.Mutex
	carts map[string][]byte
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{carts: make(map[string][]byte)}
}

func (m *MemoryPersister) Load(_ context.Context, sessionID string) ([]models.CartItem, error) {
	m.mu.Lock()
	raw, ok := m.carts[sessionID]
	m.mu.Unlock()
	if !ok {
		return nil, nil
	}
	var items []models.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (m *MemoryPersister) Save(_ context.Context, sessionID string, items []models.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.carts[sessionID] = raw
	m.mu.Unlock()
	return nil
}

func (m *MemoryPersister) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.carts, sessionID)
	m.mu.Unlock()
	return nil
}

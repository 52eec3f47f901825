package payment

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/junaidrashid-git/nursery-store/models"
)

// MemoryGateway keeps sessions in process. It backs tests and local runs
// without provider keys; every created session is considered paid.
type MemoryGateway struct {
	mu       sync.Mutex
	baseURL  string
	sessions map[string]Confirmation
	requests map[string]SessionRequest
	// CreateErr, when set, is returned by CreateSession.
	CreateErr error
}

func NewMemoryGateway(baseURL string) *MemoryGateway {
	return &MemoryGateway{
		baseURL:  baseURL,
		sessions: make(map[string]Confirmation),
		requests: make(map[string]SessionRequest),
	}
}

func (g *MemoryGateway) CreateSession(_ context.Context, req SessionRequest) (Session, error) {
	if g.CreateErr != nil {
		return Session{}, g.CreateErr
	}
	id := "cs_test_" + uuid.NewString()

	conf := Confirmation{
		SessionID:       id,
		ClientReference: req.ClientReference,
		PaymentStatus:   models.PaymentStatusPaid,
		AmountTotal:     req.Total(),
		Currency:        req.Currency,
		Customer:        CustomerDetails{Email: req.CustomerEmail},
	}
	for _, li := range req.LineItems {
		conf.LineItems = append(conf.LineItems, models.OrderItem{
			Name:        li.Name,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitAmount:  li.UnitAmount,
			AmountTotal: li.Amount(),
		})
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.sessions[id] = conf
	g.requests[id] = req
	return Session{ID: id, URL: g.baseURL + "/pay/" + id}, nil
}

func (g *MemoryGateway) Confirmation(_ context.Context, sessionID string) (Confirmation, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	conf, ok := g.sessions[sessionID]
	if !ok {
		return Confirmation{}, ErrSessionNotFound
	}
	return conf, nil
}

// Put stores or replaces a confirmation, letting tests describe what the
// provider reports.
func (g *MemoryGateway) Put(conf Confirmation) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sessions[conf.SessionID] = conf
}

// Request returns the session request a session was created from.
func (g *MemoryGateway) Request(sessionID string) (SessionRequest, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	req, ok := g.requests[sessionID]
	return req, ok
}

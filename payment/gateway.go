// Package payment talks to the hosted checkout provider. The storefront never
// sees card data: it builds a session request from the cart, redirects the
// shopper, and later reads back what the provider confirmed.
package payment

import (
	"context"
	"errors"

	"github.com/junaidrashid-git/nursery-store/models"
)

var ErrSessionNotFound = errors.New("checkout session not found")

// LineItem is one charge on the hosted checkout page, in minor units.
type LineItem struct {
	Name        string
	Description string
	UnitAmount  int64
	Quantity    int64
}

func (l LineItem) Amount() int64 {
	return l.UnitAmount * l.Quantity
}

type SessionRequest struct {
	ClientReference string // shopper session id
	Currency        string
	CustomerEmail   string
	LineItems       []LineItem
	SuccessURL      string
	CancelURL       string
	Metadata        map[string]string
}

// Total is the amount the shopper will be charged.
func (r SessionRequest) Total() int64 {
	var total int64
	for _, li := range r.LineItems {
		total += li.Amount()
	}
	return total
}

type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type CustomerDetails struct {
	Name    string
	Email   string
	Phone   string
	Address models.Address
}

// Confirmation is the provider's record of a checkout session after the
// shopper left the hosted page.
type Confirmation struct {
	SessionID       string
	ClientReference string
	PaymentStatus   models.PaymentStatus
	AmountTotal     int64
	Currency        string
	Customer        CustomerDetails
	LineItems       []models.OrderItem
}

// LinesTotal sums the confirmed line amounts.
func (c Confirmation) LinesTotal() int64 {
	var total int64
	for _, li := range c.LineItems {
		total += li.AmountTotal
	}
	return total
}

type Gateway interface {
	CreateSession(ctx context.Context, req SessionRequest) (Session, error)
	// Confirmation returns ErrSessionNotFound for ids the provider does not know.
	Confirmation(ctx context.Context, sessionID string) (Confirmation, error)
}

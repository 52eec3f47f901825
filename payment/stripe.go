package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/junaidrashid-git/nursery-store/models"
)

// StripeGateway runs checkout on Stripe Checkout.
type StripeGateway struct {
	api               *client.API
	shippingCountries []string
}

func NewStripeGateway(secretKey string, shippingCountries ...string) *StripeGateway {
	if len(shippingCountries) == 0 {
		shippingCountries = []string{"US"}
	}
	return &StripeGateway{api: client.New(secretKey, nil), shippingCountries: shippingCountries}
}

func (g *StripeGateway) CreateSession(ctx context.Context, req SessionRequest) (Session, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(req.ClientReference),
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(g.shippingCountries),
		},
		PhoneNumberCollection: &stripe.CheckoutSessionPhoneNumberCollectionParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	for _, li := range req.LineItems {
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(li.Name),
		}
		if li.Description != "" {
			product.Description = stripe.String(li.Description)
		}
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(li.Quantity),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(req.Currency),
				UnitAmount:  stripe.Int64(li.UnitAmount),
				ProductData: product,
			},
		})
	}

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return Session{}, fmt.Errorf("stripe: create checkout session: %w", err)
	}
	return Session{ID: s.ID, URL: s.URL}, nil
}

func (g *StripeGateway) Confirmation(ctx context.Context, sessionID string) (Confirmation, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	s, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == http.StatusNotFound {
			return Confirmation{}, ErrSessionNotFound
		}
		return Confirmation{}, fmt.Errorf("stripe: get checkout session: %w", err)
	}

	conf := Confirmation{
		SessionID:       s.ID,
		ClientReference: s.ClientReferenceID,
		PaymentStatus:   models.PaymentStatus(s.PaymentStatus),
		AmountTotal:     s.AmountTotal,
		Currency:        string(s.Currency),
	}
	if d := s.CustomerDetails; d != nil {
		conf.Customer = CustomerDetails{Name: d.Name, Email: d.Email, Phone: d.Phone}
		if d.Address != nil {
			conf.Customer.Address = address(d.Address)
		}
	}
	if sd := s.ShippingDetails; sd != nil && sd.Address != nil {
		conf.Customer.Address = address(sd.Address)
		if conf.Customer.Name == "" {
			conf.Customer.Name = sd.Name
		}
	}

	// Expanded line_items stop at the first page, so list them instead.
	listParams := &stripe.CheckoutSessionListLineItemsParams{Session: stripe.String(sessionID)}
	listParams.Context = ctx
	it := g.api.CheckoutSessions.ListLineItems(listParams)
	for it.Next() {
		li := it.LineItem()
		item := models.OrderItem{
			Name:        li.Description,
			Quantity:    li.Quantity,
			AmountTotal: li.AmountTotal,
		}
		if li.Price != nil {
			item.UnitAmount = li.Price.UnitAmount
		}
		conf.LineItems = append(conf.LineItems, item)
	}
	if err := it.Err(); err != nil {
		return Confirmation{}, fmt.Errorf("stripe: list line items: %w", err)
	}
	return conf, nil
}

func address(a *stripe.Address) models.Address {
	return models.Address{
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

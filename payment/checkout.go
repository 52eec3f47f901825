package payment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/junaidrashid-git/nursery-store/cart"
	"github.com/junaidrashid-git/nursery-store/models"
)

var ErrEmptyCart = errors.New("cart is empty")

// SessionPlaceholder is replaced by the provider with the real session id
// when it redirects to the success URL.
const SessionPlaceholder = "{CHECKOUT_SESSION_ID}"

// URLs are where the hosted page sends the shopper back to.
type URLs struct {
	Success string
	Cancel  string
}

// RedirectURLs builds the return URLs for a storefront served at baseURL.
func RedirectURLs(baseURL string) URLs {
	baseURL = strings.TrimRight(baseURL, "/")
	return URLs{
		Success: baseURL + "/checkout/confirm?session_id=" + SessionPlaceholder,
		Cancel:  baseURL + "/cart",
	}
}

// BuildSessionRequest turns priced cart lines into provider line items.
//
// A line whose subtotal does not divide evenly by its quantity is sent as a
// single bundled unit so the lines always add up to the cart total.
func BuildSessionRequest(sessionID string, items []models.CartItem, totals cart.Totals, customerEmail, currency string, urls URLs) (SessionRequest, error) {
	if len(items) == 0 {
		return SessionRequest{}, ErrEmptyCart
	}

	req := SessionRequest{
		ClientReference: sessionID,
		Currency:        strings.ToLower(currency),
		CustomerEmail:   strings.TrimSpace(customerEmail),
		SuccessURL:      urls.Success,
		CancelURL:       urls.Cancel,
		Metadata:        map[string]string{"session_id": sessionID},
	}
	for _, item := range items {
		req.LineItems = append(req.LineItems, lineItem(item))
	}
	if totals.Shipping > 0 {
		req.LineItems = append(req.LineItems, LineItem{
			Name:       "Shipping",
			UnitAmount: totals.Shipping * 100,
			Quantity:   1,
		})
	}

	if got, want := req.Total(), totals.Total*100; got != want {
		return SessionRequest{}, fmt.Errorf("line items add up to %d, cart total is %d", got, want)
	}
	return req, nil
}

func lineItem(item models.CartItem) LineItem {
	name := item.ProductName
	if item.Size.ID != models.StandardSizeID && item.Size.Label != "" {
		name = fmt.Sprintf("%s (%s)", item.ProductName, item.Size.Label)
	}
	amount := item.Subtotal * 100
	quantity := int64(item.Quantity)
	if quantity > 0 && amount%quantity == 0 {
		return LineItem{Name: name, UnitAmount: amount / quantity, Quantity: quantity}
	}
	return LineItem{
		Name:        name,
		Description: fmt.Sprintf("%d plants, quantity discount applied", item.Quantity),
		UnitAmount:  amount,
		Quantity:    1,
	}
}

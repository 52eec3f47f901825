package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/junaidrashid-git/nursery-store/models"
)

var (
	ErrInvalidRecipient = errors.New("invalid recipient address")
	ErrNoAdminAddress   = errors.New("no admin address configured")
)

// Notifier composes the storefront's emails and hands them to a Mailer.
type Notifier struct {
	mailer     Mailer
	from       string
	adminEmail string
	storeName  string
}

func NewNotifier(m Mailer, from, adminEmail, storeName string) *Notifier {
	return &Notifier{mailer: m, from: from, adminEmail: adminEmail, storeName: storeName}
}

// OrderConfirmation emails the customer a receipt.
func (n *Notifier) OrderConfirmation(ctx context.Context, order models.Order) (string, error) {
	if !ValidAddress(order.CustomerEmail) {
		return "", ErrInvalidRecipient
	}
	html, err := render(confirmationTmpl, templateData{Store: n.storeName, Order: order})
	if err != nil {
		return "", err
	}
	return n.send(ctx, order.CustomerEmail, fmt.Sprintf("Your %s order %s", n.storeName, order.OrderRef), html)
}

// ShipmentNotice tells the customer which carrier has the parcel.
func (n *Notifier) ShipmentNotice(ctx context.Context, order models.Order) (string, error) {
	if !ValidAddress(order.CustomerEmail) {
		return "", ErrInvalidRecipient
	}
	html, err := render(shipmentTmpl, templateData{Store: n.storeName, Order: order})
	if err != nil {
		return "", err
	}
	return n.send(ctx, order.CustomerEmail, fmt.Sprintf("Order %s has shipped", order.OrderRef), html)
}

// InternalNotice tells the shop about a new order.
func (n *Notifier) InternalNotice(ctx context.Context, order models.Order) (string, error) {
	if n.adminEmail == "" {
		return "", ErrNoAdminAddress
	}
	html, err := render(internalTmpl, templateData{Store: n.storeName, Order: order})
	if err != nil {
		return "", err
	}
	subject := fmt.Sprintf("New order %s: %s", order.OrderRef, FormatAmount(order.TotalAmount, order.Currency))
	return n.send(ctx, n.adminEmail, subject, html)
}

// Test sends a delivery check to the given address.
func (n *Notifier) Test(ctx context.Context, to string) (string, error) {
	if !ValidAddress(to) {
		return "", ErrInvalidRecipient
	}
	html, err := render(testTmpl, templateData{Store: n.storeName})
	if err != nil {
		return "", err
	}
	return n.send(ctx, to, n.storeName+" test email", html)
}

func (n *Notifier) send(ctx context.Context, to, subject, html string) (string, error) {
	id, err := n.mailer.Send(ctx, Message{
		From:    n.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return "", fmt.Errorf("send %q: %w", subject, err)
	}
	return id, nil
}

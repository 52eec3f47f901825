package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/nursery-store/models"
)

func testOrder() models.Order {
	return models.Order{
		OrderRef:       "20240301-abc",
		CustomerName:   "Rosa <Gardener>",
		CustomerEmail:  "rosa@example.com",
		TotalAmount:    26200,
		ShippingAmount: 0,
		Currency:       "usd",
		PaymentStatus:  models.PaymentStatusPaid,
		Items: []models.OrderItem{
			{Name: "Blue Agave (1 Gallon)", Description: "3 plants, quantity discount applied", Quantity: 1, UnitAmount: 17600, AmountTotal: 17600},
			{Name: "Golden Barrel", Quantity: 2, UnitAmount: 4300, AmountTotal: 8600},
		},
		ShippingAddress: models.Address{Line1: "1 Cactus Rd", City: "Tucson", State: "AZ", PostalCode: "85701", Country: "US"},
		TrackingNumber:  "1Z999",
		Carrier:         "UPS",
	}
}

func TestNotifier_OrderConfirmation(t *testing.T) {
	mailer := &MemoryMailer{}
	n := NewNotifier(mailer, "shop@nursery.test", "owner@nursery.test", "Desert Nursery")

	id, err := n.OrderConfirmation(context.Background(), testOrder())
	require.NoError(t, err)
	assert.Equal(t, "mem_1", id)

	sent := mailer.Sent()
	require.Len(t, sent, 1)
	msg := sent[0]
	assert.Equal(t, "shop@nursery.test", msg.From)
	assert.Equal(t, []string{"rosa@example.com"}, msg.To)
	assert.Contains(t, msg.Subject, "20240301-abc")
	assert.Contains(t, msg.HTML, "Blue Agave (1 Gallon)")
	assert.Contains(t, msg.HTML, "262.00 USD")
	assert.Contains(t, msg.HTML, "Tucson")
	assert.Contains(t, msg.HTML, "Rosa &lt;Gardener&gt;", "customer text is escaped")
}

func TestNotifier_ShipmentAndInternal(t *testing.T) {
	mailer := &MemoryMailer{}
	n := NewNotifier(mailer, "shop@nursery.test", "owner@nursery.test", "Desert Nursery")
	ctx := context.Background()

	_, err := n.ShipmentNotice(ctx, testOrder())
	require.NoError(t, err)
	_, err = n.InternalNotice(ctx, testOrder())
	require.NoError(t, err)

	sent := mailer.Sent()
	require.Len(t, sent, 2)
	assert.Contains(t, sent[0].HTML, "1Z999")
	assert.Contains(t, sent[0].HTML, "UPS")
	assert.Equal(t, []string{"owner@nursery.test"}, sent[1].To)
	assert.Contains(t, sent[1].Subject, "262.00 USD")
}

func TestNotifier_RejectsBadRecipients(t *testing.T) {
	mailer := &MemoryMailer{}
	n := NewNotifier(mailer, "shop@nursery.test", "", "Desert Nursery")
	ctx := context.Background()

	order := testOrder()
	order.CustomerEmail = "not-an-address"
	_, err := n.OrderConfirmation(ctx, order)
	assert.ErrorIs(t, err, ErrInvalidRecipient)

	_, err = n.InternalNotice(ctx, testOrder())
	assert.ErrorIs(t, err, ErrNoAdminAddress)

	_, err = n.Test(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidRecipient)
	assert.Empty(t, mailer.Sent())
}

func TestNotifier_WrapsMailerErrors(t *testing.T) {
	boom := errors.New("provider down")
	n := NewNotifier(&MemoryMailer{Err: boom}, "shop@nursery.test", "", "Desert Nursery")

	_, err := n.Test(context.Background(), "rosa@example.com")
	assert.ErrorIs(t, err, boom)
}

func TestValidAddress(t *testing.T) {
	assert.True(t, ValidAddress(" rosa@example.com "))
	assert.False(t, ValidAddress("rosa@"))
	assert.False(t, ValidAddress(""))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0.05 EUR", FormatAmount(5, "eur"))
	assert.Equal(t, "176.00 USD", FormatAmount(17600, "usd"))
}

package middleware

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// EventKey is where StripeWebhookAuth stores the verified stripe.Event.
const EventKey = "stripe_event"

const maxWebhookBody = 1 << 16

// StripeWebhookAuth verifies the Stripe-Signature header against the raw body
// and hands the parsed event to the next handler.
func StripeWebhookAuth(secret string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Warn("rejected webhook", zap.Int64("limit", tooLarge.Limit))
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "webhook body too large"})
			c.Abort()
			return
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read webhook body"})
			c.Abort()
			return
		}

		event, err := webhook.ConstructEventWithOptions(payload, c.GetHeader("Stripe-Signature"), secret,
			webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
		if err != nil {
			logger.Warn("rejected webhook", zap.Error(err))
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid webhook signature"})
			c.Abort()
			return
		}

		c.Set(EventKey, event)
		c.Next()
	}
}

// WebhookEvent returns the event stored by StripeWebhookAuth.
func WebhookEvent(c *gin.Context) (stripe.Event, bool) {
	v, ok := c.Get(EventKey)
	if !ok {
		return stripe.Event{}, false
	}
	event, ok := v.(stripe.Event)
	return event, ok
}

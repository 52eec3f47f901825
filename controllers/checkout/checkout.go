package checkoutControllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/nursery-store/cart"
	"github.com/junaidrashid-git/nursery-store/controllers/respond"
	"github.com/junaidrashid-git/nursery-store/middleware"
	"github.com/junaidrashid-git/nursery-store/orders"
	"github.com/junaidrashid-git/nursery-store/payment"
	"github.com/junaidrashid-git/nursery-store/pricing"
)

// Handlers starts hosted checkouts and records the orders they produce.
type Handlers struct {
	Persister cart.Persister
	Calc      *pricing.Calculator
	Gateway   payment.Gateway
	Recorder  *orders.Recorder
	Currency  string
	URLs      payment.URLs
	Logger    *zap.Logger
}

type CheckoutRequest struct {
	Email string `json:"email" binding:"omitempty,email"`
}

// StartCheckout opens a hosted payment page for the shopper's cart.
func (h *Handlers) StartCheckout() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CheckoutRequest
		if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
			respond.Invalid(c, err)
			return
		}

		sessionID := c.GetString(middleware.SessionKey)
		if sessionID == "" {
			respond.Error(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		ctx := c.Request.Context()
		store, err := cart.Open(ctx, sessionID, h.Persister, h.Calc)
		if err != nil {
			h.Logger.Error("❌ failed to load cart", zap.String("session_id", sessionID), zap.Error(err))
			respond.Error(c, http.StatusInternalServerError, "Failed to fetch cart")
			return
		}

		req, err := payment.BuildSessionRequest(sessionID, store.Items(), store.Totals(), input.Email, h.Currency, h.URLs)
		if err != nil {
			if errors.Is(err, payment.ErrEmptyCart) {
				respond.Error(c, http.StatusBadRequest, "Cart is empty")
				return
			}
			h.Logger.Error("❌ failed to build checkout", zap.String("session_id", sessionID), zap.Error(err))
			respond.Error(c, http.StatusInternalServerError, "Failed to build checkout")
			return
		}

		session, err := h.Gateway.CreateSession(ctx, req)
		if err != nil {
			h.Logger.Error("❌ payment gateway error", zap.String("session_id", sessionID), zap.Error(err))
			respond.Error(c, http.StatusBadGateway, err.Error())
			return
		}
		h.Logger.Info("💳 checkout started",
			zap.String("session_id", sessionID),
			zap.String("checkout_session", session.ID),
			zap.Int64("amount", req.Total()))
		c.JSON(http.StatusOK, gin.H{"url": session.URL, "session_id": session.ID})
	}
}

// ConfirmCheckout is where the payment page redirects after success.
// Query: session_id
func (h *Handlers) ConfirmCheckout() gin.HandlerFunc {
	return func(c *gin.Context) {
		checkoutID := c.Query("session_id")
		if checkoutID == "" {
			respond.Field(c, "session_id", "session_id is required")
			return
		}
		order, err := h.Recorder.Confirm(c.Request.Context(), checkoutID)
		if err != nil {
			h.confirmError(c, checkoutID, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func (h *Handlers) confirmError(c *gin.Context, checkoutID string, err error) {
	switch {
	case errors.Is(err, orders.ErrSessionNotFound):
		respond.Error(c, http.StatusNotFound, "Checkout session not found")
	case errors.Is(err, orders.ErrPaymentNotCompleted):
		respond.Error(c, http.StatusPaymentRequired, "payment not completed")
	default:
		h.Logger.Error("❌ failed to record order", zap.String("checkout_session", checkoutID), zap.Error(err))
		respond.Error(c, http.StatusInternalServerError, "Failed to record order")
	}
}

// PaymentWebhook handles events verified by middleware.StripeWebhookAuth.
// Only checkout.session.completed does anything; other events are acknowledged.
func (h *Handlers) PaymentWebhook() gin.HandlerFunc {
	return func(c *gin.Context) {
		event, ok := middleware.WebhookEvent(c)
		if !ok {
			respond.Error(c, http.StatusBadRequest, "missing webhook event")
			return
		}
		if event.Type != "checkout.session.completed" {
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}

		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			h.Logger.Error("❌ failed to parse webhook session", zap.String("event_id", event.ID), zap.Error(err))
			respond.Error(c, http.StatusBadRequest, "invalid checkout session payload")
			return
		}

		order, err := h.Recorder.Confirm(c.Request.Context(), session.ID)
		switch {
		case errors.Is(err, orders.ErrPaymentNotCompleted):
			// Delayed payment methods complete later with their own event.
			h.Logger.Info("⏳ checkout completed without payment", zap.String("checkout_session", session.ID))
		case err != nil:
			h.confirmError(c, session.ID, err)
			return
		default:
			h.Logger.Info("✅ webhook recorded order", zap.String("order_ref", order.OrderRef))
		}
		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}

package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/nursery-store/cart"
	"github.com/junaidrashid-git/nursery-store/catalog"
	"github.com/junaidrashid-git/nursery-store/controllers/respond"
	"github.com/junaidrashid-git/nursery-store/middleware"
	"github.com/junaidrashid-git/nursery-store/models"
	"github.com/junaidrashid-git/nursery-store/pricing"
)

// Handlers serves the shopper's cart.
type Handlers struct {
	Products  catalog.Repository
	Persister cart.Persister
	Calc      *pricing.Calculator
	Logger    *zap.Logger
}

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	SizeID    string `json:"size_id"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1,max=99"`
}

type UpdateItemInput struct {
	Quantity *int `json:"quantity" binding:"required,max=99"`
}

// CartView is the cart as the storefront renders it.
type CartView struct {
	SessionID string            `json:"session_id"`
	Items     []models.CartItem `json:"items"`
	Totals    cart.Totals       `json:"totals"`
}

func view(s *cart.Store) CartView {
	return CartView{SessionID: s.SessionID(), Items: s.Items(), Totals: s.Totals()}
}

// open loads the cart of the session set by middleware.ValidateToken.
func (h *Handlers) open(c *gin.Context) (*cart.Store, bool) {
	sessionID := c.GetString(middleware.SessionKey)
	if sessionID == "" {
		respond.Error(c, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	s, err := cart.Open(c.Request.Context(), sessionID, h.Persister, h.Calc)
	if err != nil {
		h.Logger.Error("❌ failed to load cart", zap.String("session_id", sessionID), zap.Error(err))
		respond.Error(c, http.StatusInternalServerError, "Failed to fetch cart")
		return nil, false
	}
	return s, true
}

// GET /shop/cart
func (h *Handlers) GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := h.open(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, view(s))
	}
}

// POST /shop/cart/items
func (h *Handlers) AddItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respond.Invalid(c, err)
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}

		product, err := h.Products.Get(c.Request.Context(), input.ProductID)
		if errors.Is(err, catalog.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Product not found")
			return
		}
		if err != nil {
			h.Logger.Error("❌ failed to load product", zap.String("product_id", input.ProductID), zap.Error(err))
			respond.Error(c, http.StatusInternalServerError, "Failed to validate product")
			return
		}

		s, ok := h.open(c)
		if !ok {
			return
		}
		if _, err := s.AddItem(c.Request.Context(), product, input.SizeID, input.Quantity); err != nil {
			h.storeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, view(s))
	}
}

// PATCH /shop/cart/items/:id
func (h *Handlers) UpdateItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respond.Invalid(c, err)
			return
		}
		s, ok := h.open(c)
		if !ok {
			return
		}
		if _, err := s.UpdateQuantity(c.Request.Context(), c.Param("id"), *input.Quantity); err != nil {
			h.storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, view(s))
	}
}

// DELETE /shop/cart/items/:id
func (h *Handlers) RemoveItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := h.open(c)
		if !ok {
			return
		}
		if err := s.RemoveItem(c.Request.Context(), c.Param("id")); err != nil {
			h.storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, view(s))
	}
}

// DELETE /shop/cart
func (h *Handlers) ClearCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := h.open(c)
		if !ok {
			return
		}
		if err := s.Clear(c.Request.Context()); err != nil {
			h.storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, view(s))
	}
}

func (h *Handlers) storeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrItemNotFound):
		respond.Error(c, http.StatusNotFound, "Cart item not found")
	case errors.Is(err, cart.ErrUnknownSize):
		respond.Field(c, "size_id", "Unknown size for this product")
	case errors.Is(err, cart.ErrOutOfStock):
		respond.Error(c, http.StatusConflict, "Product is out of stock")
	default:
		h.Logger.Error("❌ failed to update cart", zap.Error(err))
		respond.Error(c, http.StatusInternalServerError, "Failed to update cart")
	}
}

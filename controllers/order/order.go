package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/nursery-store/controllers/respond"
	"github.com/junaidrashid-git/nursery-store/models"
	"github.com/junaidrashid-git/nursery-store/orders"
)

// -------- Request Structs --------

type UpdateOrderStatusRequest struct {
	Status         string `json:"status" binding:"required"`
	TrackingNumber string `json:"tracking_number"`
	Carrier        string `json:"carrier"`
}

// -------- Handlers --------

type Handlers struct {
	Admin  *orders.Admin
	Logger *zap.Logger
}

func (h *Handlers) fail(c *gin.Context, err error, msg string) {
	var fieldErr *models.FieldError
	switch {
	case errors.As(err, &fieldErr):
		respond.Invalid(c, err)
	case errors.Is(err, orders.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "Order not found")
	case errors.Is(err, orders.ErrInvalidTransition):
		respond.Error(c, http.StatusConflict, err.Error())
	default:
		h.Logger.Error("❌ "+msg, zap.Error(err))
		respond.Error(c, http.StatusInternalServerError, msg)
	}
}

// GetAllOrdersHandler pages through orders, newest first.
// Query: page, limit, status, search
func (h *Handlers) GetAllOrdersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(orders.DefaultLimit)))

		result, err := h.Admin.List(c.Request.Context(), orders.ListQuery{
			Page:   page,
			Limit:  limit,
			Status: models.OrderStatus(c.Query("status")),
			Search: c.Query("search"),
		})
		if err != nil {
			h.fail(c, err, "Failed to fetch orders")
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func (h *Handlers) GetOrderStatsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := h.Admin.Stats(c.Request.Context())
		if err != nil {
			h.fail(c, err, "Failed to fetch order stats")
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

func (h *Handlers) GetOrderByIDHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderID(c)
		if !ok {
			return
		}
		order, err := h.Admin.Get(c.Request.Context(), id)
		if err != nil {
			h.fail(c, err, "Failed to fetch order")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// UpdateOrderStatusHandler moves an order forward. Shipping needs a
// tracking_number and a carrier.
func (h *Handlers) UpdateOrderStatusHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderID(c)
		if !ok {
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Invalid(c, err)
			return
		}

		order, err := h.Admin.AdvanceStatus(c.Request.Context(), id, models.OrderStatus(req.Status), orders.Shipment{
			TrackingNumber: req.TrackingNumber,
			Carrier:        req.Carrier,
		})
		if err != nil {
			h.fail(c, err, "Failed to update order status")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func orderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respond.Error(c, http.StatusBadRequest, "Invalid order id")
		return 0, false
	}
	return uint(id), true
}

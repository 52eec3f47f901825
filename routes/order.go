package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/junaidrashid-git/nursery-store/controllers/order"
)

func SetupOrderRoutes(admin *gin.RouterGroup, d Deps) {
	h := &orderControllers.Handlers{Admin: d.Orders, Logger: d.Logger}

	orders := admin.Group("/orders")
	{
		// Paged list: ?page=&limit=&status=&search=
		orders.GET("", h.GetAllOrdersHandler())

		orders.GET("/stats", h.GetOrderStatsHandler())

		// websocket endpoint for real-time new orders
		orders.GET("/ws", d.Hub.OrderWebSocketHandler())

		orders.GET("/:id", h.GetOrderByIDHandler())

		// confirmed -> shipped -> delivered
		orders.PUT("/:id/status", h.UpdateOrderStatusHandler())
	}
}

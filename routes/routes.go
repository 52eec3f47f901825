package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/nursery-store/auth"
	"github.com/junaidrashid-git/nursery-store/cart"
	"github.com/junaidrashid-git/nursery-store/catalog"
	"github.com/junaidrashid-git/nursery-store/config"
	orderControllers "github.com/junaidrashid-git/nursery-store/controllers/order"
	"github.com/junaidrashid-git/nursery-store/controllers/respond"
	"github.com/junaidrashid-git/nursery-store/notify"
	"github.com/junaidrashid-git/nursery-store/orders"
	"github.com/junaidrashid-git/nursery-store/payment"
	"github.com/junaidrashid-git/nursery-store/pricing"
)

// Deps is everything the handlers need, built once in main.
type Deps struct {
	Config   config.Config
	Sessions *auth.Sessions
	Products catalog.Repository
	Carts    cart.Persister
	Calc     *pricing.Calculator
	Gateway  payment.Gateway
	Recorder *orders.Recorder
	Orders   *orders.Admin
	Notifier *notify.Notifier
	Hub      *orderControllers.Hub
	Logger   *zap.Logger
}

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, d Deps) {
	respond.UseJSONFieldNames()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 1️⃣ Public: shopper sessions and the catalog
	SetupAuthRoutes(r, d)
	SetupCatalogRoutes(r, d)

	// 2️⃣ Shopper routes (session token)
	SetupShopRoutes(r, d)

	// 3️⃣ Payment return page and webhook
	SetupPaymentRoutes(r, d)

	// 4️⃣ Admin routes (API-Key protected)
	SetupAdminRoutes(r, d)
}

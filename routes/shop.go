package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/junaidrashid-git/nursery-store/controllers/cart"
	checkoutControllers "github.com/junaidrashid-git/nursery-store/controllers/checkout"
	productcontroller "github.com/junaidrashid-git/nursery-store/controllers/product"
	"github.com/junaidrashid-git/nursery-store/middleware"
	"github.com/junaidrashid-git/nursery-store/payment"
)

// SetupCatalogRoutes registers the public browsing endpoints.
func SetupCatalogRoutes(r *gin.Engine, d Deps) {
	products := &productcontroller.Handlers{Products: d.Products, Logger: d.Logger}

	r.GET("/products", products.GetProducts())
	r.GET("/products/:id", products.GetProductByID())
	r.GET("/categories", products.GetAllCategories())
}

// SetupShopRoutes registers all "/shop/*" endpoints. Requires a session token.
func SetupShopRoutes(r *gin.Engine, d Deps) {
	carts := &cartControllers.Handlers{
		Products:  d.Products,
		Persister: d.Carts,
		Calc:      d.Calc,
		Logger:    d.Logger,
	}

	shopGroup := r.Group("/shop")
	shopGroup.Use(middleware.ValidateToken(d.Sessions))
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := shopGroup.Group("/cart")
		{
			cartGroup.GET("", carts.GetCart())
			cartGroup.DELETE("", carts.ClearCart())
			cartGroup.POST("/items", carts.AddItem())
			cartGroup.PATCH("/items/:id", carts.UpdateItem())
			cartGroup.DELETE("/items/:id", carts.RemoveItem())
		}

		// ──────────────── Checkout ────────────────
		shopGroup.POST("/checkout", checkoutHandlers(d).StartCheckout())
	}
}

// SetupPaymentRoutes registers the payment return page and the webhook.
func SetupPaymentRoutes(r *gin.Engine, d Deps) {
	checkout := checkoutHandlers(d)

	r.GET("/checkout/confirm", checkout.ConfirmCheckout())
	r.POST("/payment/webhook",
		middleware.StripeWebhookAuth(d.Config.StripeWebhookSecret, d.Logger),
		checkout.PaymentWebhook(),
	)
}

func checkoutHandlers(d Deps) *checkoutControllers.Handlers {
	return &checkoutControllers.Handlers{
		Persister: d.Carts,
		Calc:      d.Calc,
		Gateway:   d.Gateway,
		Recorder:  d.Recorder,
		Currency:  d.Config.Currency,
		URLs:      payment.RedirectURLs(d.Config.PublicBaseURL),
		Logger:    d.Logger,
	}
}

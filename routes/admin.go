package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/junaidrashid-git/nursery-store/controllers/admin"
	productcontroller "github.com/junaidrashid-git/nursery-store/controllers/product"
	"github.com/junaidrashid-git/nursery-store/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	products := &productcontroller.Handlers{Products: d.Products, Logger: d.Logger}

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(d.Config.AdminAPIKey))
	{
		// ─────────── Orders ───────────
		SetupOrderRoutes(adminGroup, d)

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", products.CreateProduct())
			productAdmin.PUT("/:id", products.UpdateProduct())
			productAdmin.GET("", products.GetProducts())
			productAdmin.DELETE("/:id", products.DeleteProduct())
			productAdmin.POST("/import-excel", products.ImportProductsFromExcel())
			productAdmin.GET("/export-excel", products.ExportProductsToExcel())
		}

		// ─────────── Email ───────────
		adminGroup.POST("/email/test", adminController.SendTestEmail(d.Notifier, d.Logger))
	}
}

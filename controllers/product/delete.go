package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DeleteProduct removes a product. Carts keep their snapshot of it.
func (h *Handlers) DeleteProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := h.Products.Delete(c.Request.Context(), id); err != nil {
			h.repoError(c, err, "Failed to delete product")
			return
		}
		h.Logger.Info("🗑️ product deleted", zap.String("product_id", id))
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}

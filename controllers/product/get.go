package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetProductByID returns a single product.
// URL param: /products/:id
func (h *Handlers) GetProductByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := h.Products.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			h.repoError(c, err, "Failed to retrieve product")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

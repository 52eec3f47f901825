package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/nursery-store/controllers/respond"
)

// UpdateProduct replaces the product at /admin/products/:id.
func (h *Handlers) UpdateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, err := h.Products.Get(c.Request.Context(), id); err != nil {
			h.repoError(c, err, "Failed to update product")
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respond.Invalid(c, err)
			return
		}
		product, err := input.product(id)
		if err != nil {
			respond.Invalid(c, err)
			return
		}
		if _, err := h.Products.Save(c.Request.Context(), &product); err != nil {
			h.repoError(c, err, "Failed to update product")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

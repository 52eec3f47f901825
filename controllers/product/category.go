package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/nursery-store/models"
)

type CategoryCount struct {
	Category     models.Category `json:"category"`
	ProductCount int64           `json:"product_count"`
}

// GetAllCategories lists every category with the number of products in it,
// including empty ones.
func (h *Handlers) GetAllCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		counts, err := h.Products.CountByCategory(c.Request.Context())
		if err != nil {
			h.repoError(c, err, "Failed to fetch categories")
			return
		}
		out := make([]CategoryCount, 0, len(models.Categories))
		for _, category := range models.Categories {
			out = append(out, CategoryCount{Category: category, ProductCount: counts[category]})
		}
		c.JSON(http.StatusOK, out)
	}
}

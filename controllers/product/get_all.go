package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/junaidrashid-git/nursery-store/catalog"
	"github.com/junaidrashid-git/nursery-store/controllers/respond"
	"github.com/junaidrashid-git/nursery-store/models"
)

// GetProducts lists the catalog.
// Query: search, category, min_price, max_price, featured, in_stock, sort_by, order
func (h *Handlers) GetProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := catalog.Filter{
			Search:     c.Query("search"),
			SortBy:     c.DefaultQuery("sort_by", "created_at"),
			Descending: strings.ToLower(c.DefaultQuery("order", "desc")) != "asc",
		}

		if raw := c.Query("category"); raw != "" {
			category, ok := models.ParseCategory(raw)
			if !ok {
				respond.Field(c, "category", "Invalid category")
				return
			}
			filter.Category = category
		}
		var ok bool
		if filter.MinPrice, ok = queryPrice(c, "min_price"); !ok {
			return
		}
		if filter.MaxPrice, ok = queryPrice(c, "max_price"); !ok {
			return
		}
		if raw := c.Query("featured"); raw != "" {
			featured, err := strconv.ParseBool(raw)
			if err != nil {
				respond.Field(c, "featured", "Invalid featured")
				return
			}
			filter.Featured = &featured
		}
		filter.InStockOnly = c.Query("in_stock") == "true"

		products, err := h.Products.List(c.Request.Context(), filter)
		if err != nil {
			h.repoError(c, err, "Failed to fetch products")
			return
		}
		if products == nil {
			products = []models.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

func queryPrice(c *gin.Context, name string) (*decimal.Decimal, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		respond.Field(c, name, "Invalid "+name)
		return nil, false
	}
	return &v, true
}

package productcontroller

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/nursery-store/catalog"
)

func (h *Handlers) ExportProductsToExcel() gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := h.Products.List(c.Request.Context(), catalog.Filter{SortBy: "name"})
		if err != nil {
			h.repoError(c, err, "Failed to fetch products")
			return
		}

		var buf bytes.Buffer
		if err := catalog.WriteSheet(&buf, products); err != nil {
			h.repoError(c, err, "Failed to write Excel file")
			return
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Expires", "0")
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	}
}

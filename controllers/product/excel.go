package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/nursery-store/catalog"
	"github.com/junaidrashid-git/nursery-store/controllers/respond"
)

// ImportProductsFromExcel upserts the products of an uploaded workbook.
// With ?replace=true the workbook becomes the whole catalog.
func (h *Handlers) ImportProductsFromExcel() gin.HandlerFunc {
	return func(c *gin.Context) {
		header, err := c.FormFile("file")
		if err != nil {
			respond.Field(c, "file", "Excel file is required")
			return
		}
		file, err := header.Open()
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "Failed to open Excel file")
			return
		}
		defer file.Close()

		res, err := catalog.ReadSheet(file, header.Size)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, err.Error())
			return
		}

		ctx := c.Request.Context()
		createdCount, updatedCount := 0, 0
		if replace, _ := strconv.ParseBool(c.Query("replace")); replace {
			if err := h.Products.ReplaceAll(ctx, res.Products); err != nil {
				h.repoError(c, err, "Failed to replace catalog")
				return
			}
			createdCount = len(res.Products)
		} else {
			for i := range res.Products {
				created, err := h.Products.Save(ctx, &res.Products[i])
				if err != nil {
					h.repoError(c, err, "Failed to save product "+res.Products[i].ID)
					return
				}
				if created {
					createdCount++
				} else {
					updatedCount++
				}
			}
		}

		h.Logger.Info("📥 catalog import finished",
			zap.Int("created", createdCount), zap.Int("updated", updatedCount), zap.Int("skipped", res.Skipped))
		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": res.Skipped,
			"warnings":      res.Warnings,
		})
	}
}

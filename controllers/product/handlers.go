package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/nursery-store/catalog"
	"github.com/junaidrashid-git/nursery-store/controllers/respond"
)

// Handlers serves the catalog to shoppers and the admin panel.
type Handlers struct {
	Products catalog.Repository
	Logger   *zap.Logger
}

func (h *Handlers) repoError(c *gin.Context, err error, msg string) {
	if errors.Is(err, catalog.ErrNotFound) {
		respond.Error(c, http.StatusNotFound, "Product not found")
		return
	}
	h.Logger.Error("❌ "+msg, zap.Error(err))
	respond.Error(c, http.StatusInternalServerError, msg)
}

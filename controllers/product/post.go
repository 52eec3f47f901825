package productcontroller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/nursery-store/catalog"
	"github.com/junaidrashid-git/nursery-store/controllers/respond"
	"github.com/junaidrashid-git/nursery-store/models"
	"github.com/junaidrashid-git/nursery-store/pricing"
)

// ProductInput is the admin create/update body.
type ProductInput struct {
	ID              string                  `json:"id"`
	Name            string                  `json:"name" binding:"required"`
	ScientificName  string                  `json:"scientific_name"`
	Category        string                  `json:"category" binding:"required"`
	Price           decimal.Decimal         `json:"price"`
	Description     string                  `json:"description"`
	ImageURL        string                  `json:"image_url"`
	Images          []string                `json:"images"`
	Sizes           []models.Size           `json:"sizes"`
	StockQuantity   int                     `json:"stock_quantity" binding:"min=0"`
	InStock         *bool                   `json:"in_stock"`
	Featured        bool                    `json:"featured"`
	Characteristics *models.Characteristics `json:"characteristics"`
}

func (in ProductInput) product(id string) (models.Product, error) {
	category, ok := models.ParseCategory(in.Category)
	if !ok {
		return models.Product{}, &models.FieldError{Field: "category", Message: "Invalid category"}
	}
	p := models.Product{
		ID:              id,
		Name:            strings.TrimSpace(in.Name),
		ScientificName:  strings.TrimSpace(in.ScientificName),
		Category:        category,
		Price:           in.Price,
		Description:     in.Description,
		ImageURL:        in.ImageURL,
		Images:          in.Images,
		Sizes:           in.Sizes,
		StockQuantity:   in.StockQuantity,
		InStock:         in.InStock == nil || *in.InStock,
		Featured:        in.Featured,
		Characteristics: in.Characteristics,
	}
	if p.ImageURL == "" && len(p.Images) > 0 {
		p.ImageURL = p.Images[0]
	}
	return p, p.Validate()
}

// CreateProduct adds a product. The id defaults to a slug of the name.
func (h *Handlers) CreateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respond.Invalid(c, err)
			return
		}
		id := strings.TrimSpace(input.ID)
		if id == "" {
			id = pricing.SizeID(input.Name)
		}
		product, err := input.product(id)
		if err != nil {
			respond.Invalid(c, err)
			return
		}

		_, err = h.Products.Get(c.Request.Context(), id)
		switch {
		case err == nil:
			respond.Error(c, http.StatusConflict, "A product with this id already exists")
			return
		case !errors.Is(err, catalog.ErrNotFound):
			h.repoError(c, err, "Failed to create product")
			return
		}

		if _, err := h.Products.Save(c.Request.Context(), &product); err != nil {
			h.repoError(c, err, "Failed to create product")
			return
		}
		h.Logger.Info("🌵 product created", zap.String("product_id", product.ID))
		c.JSON(http.StatusCreated, product)
	}
}

package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// StandardSizeID identifies the implicit size of products without variants.
const StandardSizeID = "standard"

// Size is a purchasable variant of a product. Price, when set, replaces
// BasePrice*Multiplier.
type Size struct {
	ID         string           `json:"id"`
	Label      string           `json:"label"`
	Multiplier decimal.Decimal  `json:"multiplier"`
	Price      *decimal.Decimal `json:"price,omitempty"`
}

// StandardSize is used when a product defines no sizes.
func StandardSize() Size {
	return Size{ID: StandardSizeID, Label: "Standard", Multiplier: decimal.NewFromInt(1)}
}

type MatureSize string
type GrowthRate string
type CareLevel string

const (
	MatureSizeSmall  MatureSize = "small"
	MatureSizeMedium MatureSize = "medium"
	MatureSizeLarge  MatureSize = "large"

	GrowthRateSlow     GrowthRate = "slow"
	GrowthRateModerate GrowthRate = "moderate"
	GrowthRateFast     GrowthRate = "fast"

	CareLevelEasy     CareLevel = "easy"
	CareLevelModerate CareLevel = "moderate"
	CareLevelAdvanced CareLevel = "advanced"
)

// Characteristics describes how a plant grows and what it tolerates.
type Characteristics struct {
	MinTemperatureF *int       `json:"min_temperature_f,omitempty"`
	MatureSize      MatureSize `json:"mature_size,omitempty"`
	GrowthRate      GrowthRate `json:"growth_rate,omitempty"`
	CareLevel       CareLevel  `json:"care_level,omitempty"`
	Flowering       bool       `json:"flowering"`
	Indoor          bool       `json:"indoor"`
	Outdoor         bool       `json:"outdoor"`
	DroughtTolerant bool       `json:"drought_tolerant"`
}

type Product struct {
	ID              string           `gorm:"primaryKey" json:"id"`
	Name            string           `gorm:"not null" json:"name"`
	ScientificName  string           `json:"scientific_name,omitempty"`
	Category        Category         `gorm:"type:VARCHAR(20);index;not null" json:"category"`
	Price           decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"price"`
	Description     string           `json:"description"`
	ImageURL        string           `json:"image_url"`
	Images          pq.StringArray   `gorm:"type:text[]" json:"images"`
	Sizes           []Size           `gorm:"type:jsonb;serializer:json" json:"sizes"`
	StockQuantity   int              `json:"stock_quantity"`
	InStock         bool             `json:"in_stock"`
	Featured        bool             `gorm:"index" json:"featured"`
	Characteristics *Characteristics `gorm:"type:jsonb;serializer:json" json:"characteristics,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// EffectiveSizes returns the declared sizes, or the implicit standard size.
func (p Product) EffectiveSizes() []Size {
	if len(p.Sizes) == 0 {
		return []Size{StandardSize()}
	}
	return p.Sizes
}

// FindSize resolves a size id. An empty id selects the first size.
func (p Product) FindSize(id string) (Size, bool) {
	sizes := p.EffectiveSizes()
	if id == "" {
		return sizes[0], true
	}
	for _, s := range sizes {
		if s.ID == id {
			return s, true
		}
	}
	return Size{}, false
}

// Validate checks the fields an admin or an import must get right.
func (p Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return &FieldError{Field: "id", Message: "id is required"}
	}
	if strings.TrimSpace(p.Name) == "" {
		return &FieldError{Field: "name", Message: "name is required"}
	}
	if !p.Price.IsPositive() {
		return &FieldError{Field: "price", Message: "price must be greater than zero"}
	}
	if !p.Category.Valid() {
		return &FieldError{Field: "category", Message: fmt.Sprintf("unknown category %q", p.Category)}
	}
	seen := make(map[string]bool, len(p.Sizes))
	for _, s := range p.Sizes {
		if s.ID == "" {
			return &FieldError{Field: "sizes", Message: "size id is required"}
		}
		if seen[s.ID] {
			return &FieldError{Field: "sizes", Message: fmt.Sprintf("duplicate size %q", s.ID)}
		}
		seen[s.ID] = true
		if !s.Multiplier.IsPositive() && s.Price == nil {
			return &FieldError{Field: "sizes", Message: fmt.Sprintf("size %q needs a positive multiplier", s.ID)}
		}
		if s.Price != nil && !s.Price.IsPositive() {
			return &FieldError{Field: "sizes", Message: fmt.Sprintf("size %q needs a positive price", s.ID)}
		}
	}
	if p.StockQuantity < 0 {
		return &FieldError{Field: "stock_quantity", Message: "stock_quantity cannot be negative"}
	}
	return nil
}

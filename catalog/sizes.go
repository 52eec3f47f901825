package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/junaidrashid-git/nursery-store/models"
)

// FormatSizes encodes sizes for a spreadsheet cell as
// `id:label:multiplier[:price]` entries joined by ';'.
func FormatSizes(sizes []models.Size) string {
	parts := make([]string, 0, len(sizes))
	for _, s := range sizes {
		part := fmt.Sprintf("%s:%s:%s", s.ID, s.Label, s.Multiplier.String())
		if s.Price != nil {
			part += ":" + s.Price.StringFixed(2)
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ";")
}

// ParseSizes is the inverse of FormatSizes.
func ParseSizes(cell string) ([]models.Size, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil, nil
	}
	var sizes []models.Size
	for _, part := range strings.Split(cell, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Split(part, ":")
		if len(fields) < 3 || len(fields) > 4 {
			return nil, fmt.Errorf("size %q: want id:label:multiplier[:price]", part)
		}
		multiplier, err := decimal.NewFromString(strings.TrimSpace(fields[2]))
		if err != nil {
			return nil, fmt.Errorf("size %q: invalid multiplier: %w", part, err)
		}
		size := models.Size{
			ID:         strings.TrimSpace(fields[0]),
			Label:      strings.TrimSpace(fields[1]),
			Multiplier: multiplier,
		}
		if len(fields) == 4 {
			price, err := decimal.NewFromString(strings.TrimSpace(fields[3]))
			if err != nil {
				return nil, fmt.Errorf("size %q: invalid price: %w", part, err)
			}
			size.Price = &price
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}

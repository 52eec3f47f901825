package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/junaidrashid-git/nursery-store/models"
)

// SizeLadder is the multiplier table applied, smallest first, to sizes that
// have a label but no price of their own.
var SizeLadder = []decimal.Decimal{
	decimal.NewFromInt(1),
	decimal.RequireFromString("1.3"),
	decimal.RequireFromString("1.6"),
	decimal.NewFromInt(2),
	decimal.RequireFromString("2.5"),
}

// SizesFromLabels builds a size table for labels listed smallest first.
// Labels past the end of the ladder reuse its last step.
func SizesFromLabels(labels []string) []models.Size {
	var sizes []models.Size
	seen := make(map[string]bool)
	for _, label := range labels {
		label = strings.TrimSpace(label)
		id := SizeID(label)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		step := len(sizes)
		if step >= len(SizeLadder) {
			step = len(SizeLadder) - 1
		}
		sizes = append(sizes, models.Size{ID: id, Label: label, Multiplier: SizeLadder[step]})
	}
	return sizes
}

// SizeID turns a label such as `1 Gallon (6")` into `1-gallon-6`.
func SizeID(label string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(label) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if b.Len() > 0 && !dash {
				b.WriteRune('-')
				dash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

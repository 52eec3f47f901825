package models

import "strings"

// Category groups the catalog for browsing and shipping rates.
type Category string

const (
	CategoryCacti      Category = "cacti"
	CategoryAgaves     Category = "agaves"
	CategorySucculents Category = "succulents"
	CategoryCuttings   Category = "cuttings"
	CategorySeeds      Category = "seeds"
	CategoryTropicals  Category = "tropicals"
	CategoryTrees      Category = "trees"
	CategoryOther      Category = "other"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryCacti,
	CategoryAgaves,
	CategorySucculents,
	CategoryCuttings,
	CategorySeeds,
	CategoryTropicals,
	CategoryTrees,
	CategoryOther,
}

// ParseCategory maps a user supplied string onto a known category.
func ParseCategory(s string) (Category, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

func (c Category) Valid() bool {
	_, ok := ParseCategory(string(c))
	return ok
}

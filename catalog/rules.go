package catalog

import (
	"strings"

	"github.com/junaidrashid-git/nursery-store/models"
)

// CategoryRule assigns Category when any keyword appears in the product text.
type CategoryRule struct {
	Name     string
	Keywords []string
	Category models.Category
}

func (r CategoryRule) Match(text string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// CategoryRules are evaluated top to bottom; the first match wins. Seeds and
// cuttings come first because "agave seeds" is still a packet of seeds.
var CategoryRules = []CategoryRule{
	{Name: "seeds", Keywords: []string{"seed"}, Category: models.CategorySeeds},
	{Name: "cuttings", Keywords: []string{"cutting", "unrooted", "pup"}, Category: models.CategoryCuttings},
	{Name: "agaves", Keywords: []string{"agave"}, Category: models.CategoryAgaves},
	{Name: "cacti", Keywords: []string{"cactus", "cacti", "opuntia", "trichocereus", "echinopsis", "echinocactus", "ferocactus", "saguaro", "cholla"}, Category: models.CategoryCacti},
	{Name: "succulents", Keywords: []string{"succulent", "aloe", "echeveria", "haworthia", "sedum", "yucca", "euphorbia"}, Category: models.CategorySucculents},
	{Name: "tropicals", Keywords: []string{"tropical", "palm", "banana", "philodendron", "monstera", "plumeria"}, Category: models.CategoryTropicals},
	{Name: "trees", Keywords: []string{"tree", "mesquite", "palo verde", "citrus"}, Category: models.CategoryTrees},
}

// InferCategory matches the rules against the joined, lower-cased texts and
// falls back to CategoryOther.
func InferCategory(texts ...string) models.Category {
	text := strings.ToLower(strings.Join(texts, " "))
	for _, rule := range CategoryRules {
		if rule.Match(text) {
			return rule.Category
		}
	}
	return models.CategoryOther
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/junaidrashid-git/nursery-store/models"
)

func TestInferCategory(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  models.Category
	}{
		{"seeds beat the plant they grow into", []string{"Agave Seeds"}, models.CategorySeeds},
		{"cuttings beat cacti", []string{"Trichocereus cutting 12in"}, models.CategoryCuttings},
		{"agave", []string{"Agaves", "Whale's Tongue"}, models.CategoryAgaves},
		{"cactus genus", []string{"", "Opuntia ellisiana"}, models.CategoryCacti},
		{"succulent", []string{"Aloe vera"}, models.CategorySucculents},
		{"tropical", []string{"Windmill Palm"}, models.CategoryTropicals},
		{"tree", []string{"Desert Willow Tree"}, models.CategoryTrees},
		{"case insensitive", []string{"GIANT SAGUARO"}, models.CategoryCacti},
		{"default", []string{"Gift Card"}, models.CategoryOther},
		{"empty", nil, models.CategoryOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferCategory(tt.texts...))
		})
	}
}

func TestCategoryRulesCoverOnlyKnownCategories(t *testing.T) {
	for _, rule := range CategoryRules {
		assert.Truef(t, rule.Category.Valid(), "rule %s", rule.Name)
		assert.NotEmpty(t, rule.Keywords, "rule %s", rule.Name)
	}
}

func TestInferCharacteristics(t *testing.T) {
	c := InferCharacteristics("Dwarf Aloe", "Slow growing houseplant, flowers in winter. Drought tolerant and easy.")
	assert.Equal(t, models.MatureSizeSmall, c.MatureSize)
	assert.Equal(t, models.GrowthRateSlow, c.GrowthRate)
	assert.Equal(t, models.CareLevelEasy, c.CareLevel)
	assert.True(t, c.Flowering)
	assert.True(t, c.Indoor)
	assert.False(t, c.Outdoor)
	assert.True(t, c.DroughtTolerant)
	assert.Nil(t, c.MinTemperatureF)

	c = InferCharacteristics("Mesquite", "Reaches to 25 feet in the landscape, hardy down to -5 F. Difficult to transplant.")
	assert.Equal(t, models.MatureSizeLarge, c.MatureSize)
	assert.Equal(t, models.CareLevelAdvanced, c.CareLevel)
	assert.True(t, c.Outdoor)
	if assert.NotNil(t, c.MinTemperatureF) {
		assert.Equal(t, -5, *c.MinTemperatureF)
	}

	c = InferCharacteristics("Plant")
	assert.Equal(t, models.MatureSizeMedium, c.MatureSize)
	assert.Equal(t, models.GrowthRateModerate, c.GrowthRate)
	assert.True(t, c.Outdoor, "outdoor is the default placement")
}

package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/nursery-store/models"
)

func TestFormatAndParseSizes(t *testing.T) {
	price := decimal.RequireFromString("89.5")
	sizes := []models.Size{
		{ID: "1-gallon", Label: "1 Gallon", Multiplier: decimal.NewFromInt(1)},
		{ID: "15-gallon", Label: "15 Gallon", Multiplier: decimal.RequireFromString("2.5"), Price: &price},
	}

	cell := FormatSizes(sizes)
	assert.Equal(t, "1-gallon:1 Gallon:1;15-gallon:15 Gallon:2.5:89.50", cell)

	parsed, err := ParseSizes(cell)
	require.NoError(t, err)
	require.Len(t, parsed, 2)
	assert.Equal(t, "15 Gallon", parsed[1].Label)
	require.NotNil(t, parsed[1].Price)
	assert.True(t, parsed[1].Price.Equal(price))
}

func TestParseSizes_Errors(t *testing.T) {
	_, err := ParseSizes("small:Small")
	assert.Error(t, err)
	_, err = ParseSizes("small:Small:big")
	assert.Error(t, err)

	sizes, err := ParseSizes("  ")
	assert.NoError(t, err)
	assert.Nil(t, sizes)
}

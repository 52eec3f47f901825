package catalog

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/nursery-store/models"
)

const wooExport = `ID,Type,SKU,Name,Published,"Is featured?","In stock?",Stock,"Sale price","Regular price",Categories,Images,Parent,"Short description",Description,"Attribute 1 value(s)"
101,variable,AGV-BLUE,"Blue Agave (Agave tequilana)",1,1,1,12,,,"Agaves, Succulents","https://img/a.jpg, https://img/b.jpg",,"Fast growing, hardy to 15°F","<p>A striking plant, grows to 6 feet.</p>",
102,variation,,"Blue Agave - 1 Gallon",1,0,1,,,30,,,id:101,,,"1 Gallon"
103,variation,,"Blue Agave - 5 Gallon",1,0,1,,,48,,,id:101,,,"5 Gallon"
104,simple,SEED-1,"Saguaro Seeds, 50 count",1,0,1,200,4.50,5,"Cacti > Seeds",,,"Easy to grow indoors",,
105,simple,,"Hidden Plant",0,0,1,,,10,,,,,,
106,simple,,"Mystery Plant",1,0,1,,,,,,,,,
107,simple,CUT-1,"Opuntia Pad",1,0,0,,,12,Cactus,,,,"Unrooted cutting, zone 7","4 inch, 8 inch"
`

func TestParseWooCommerce(t *testing.T) {
	res, err := ParseWooCommerce(strings.NewReader(wooExport))
	require.NoError(t, err)

	require.Len(t, res.Products, 3)
	assert.Equal(t, 2, res.Skipped)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "Mystery Plant")

	agave := res.Products[0]
	assert.Equal(t, "blue-agave", agave.ID)
	assert.Equal(t, "Blue Agave", agave.Name)
	assert.Equal(t, "Agave tequilana", agave.ScientificName)
	assert.Equal(t, models.CategoryAgaves, agave.Category)
	assert.True(t, agave.Price.Equal(decimal.NewFromInt(30)))
	assert.True(t, agave.Featured)
	assert.Equal(t, 12, agave.StockQuantity)
	assert.Equal(t, "https://img/a.jpg", agave.ImageURL)
	assert.Len(t, agave.Images, 2)
	assert.Equal(t, "A striking plant, grows to 6 feet.", agave.Description)
	require.Len(t, agave.Sizes, 2)
	assert.Equal(t, "1-gallon", agave.Sizes[0].ID)
	assert.True(t, agave.Sizes[1].Multiplier.Equal(decimal.RequireFromString("1.6")))
	require.NotNil(t, agave.Characteristics)
	assert.Equal(t, models.GrowthRateFast, agave.Characteristics.GrowthRate)
	require.NotNil(t, agave.Characteristics.MinTemperatureF)
	assert.Equal(t, 15, *agave.Characteristics.MinTemperatureF)
	assert.Equal(t, models.MatureSizeMedium, agave.Characteristics.MatureSize)

	seeds := res.Products[1]
	assert.Equal(t, "saguaro-seeds-50-count", seeds.ID)
	assert.Equal(t, models.CategorySeeds, seeds.Category)
	assert.True(t, seeds.Price.Equal(decimal.RequireFromString("4.50")), "sale price wins")
	assert.Empty(t, seeds.Sizes)
	assert.Equal(t, models.CareLevelEasy, seeds.Characteristics.CareLevel)
	assert.True(t, seeds.Characteristics.Indoor)

	pad := res.Products[2]
	assert.Equal(t, models.CategoryCacti, pad.Category)
	assert.False(t, pad.InStock)
	require.Len(t, pad.Sizes, 2)
	assert.True(t, pad.Sizes[1].Multiplier.Equal(decimal.RequireFromString("1.3")))
	require.NotNil(t, pad.Characteristics.MinTemperatureF)
	assert.Equal(t, 0, *pad.Characteristics.MinTemperatureF)
}

func TestParseWooCommerce_RequiresNameColumn(t *testing.T) {
	_, err := ParseWooCommerce(strings.NewReader("ID,SKU\n1,A\n"))
	assert.Error(t, err)
}

func TestSplitScientificName(t *testing.T) {
	name, sci := splitScientificName("Golden Barrel (Echinocactus grusonii) 6in")
	assert.Equal(t, "Golden Barrel 6in", name)
	assert.Equal(t, "Echinocactus grusonii", sci)

	name, sci = splitScientificName("Mystery Cactus")
	assert.Equal(t, "Mystery Cactus", name)
	assert.Empty(t, sci)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Bright & sunny spot. Water monthly.",
		cleanText(`<p>Bright &amp; sunny spot.</p>\n<ul><li>Water   monthly.</li></ul>`))
}

package catalog

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"github.com/junaidrashid-git/nursery-store/models"
)

func TestSheetRoundTrip(t *testing.T) {
	price := decimal.RequireFromString("99")
	products := []models.Product{{
		ID:            "blue-agave",
		Name:          "Blue Agave",
		Category:      models.CategoryAgaves,
		Price:         decimal.RequireFromString("30.50"),
		Images:        []string{"https://img/a.jpg", "https://img/b.jpg"},
		ImageURL:      "https://img/a.jpg",
		StockQuantity: 7,
		InStock:       true,
		Featured:      true,
		Sizes: []models.Size{
			{ID: "1-gallon", Label: "1 Gallon", Multiplier: decimal.NewFromInt(1)},
			{ID: "15-gallon", Label: "15 Gallon", Multiplier: decimal.RequireFromString("2.5"), Price: &price},
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteSheet(&buf, products))

	res, err := ReadSheet(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, res.Products, 1)
	got := res.Products[0]
	assert.Equal(t, "blue-agave", got.ID)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("30.5")))
	assert.Equal(t, 7, got.StockQuantity)
	assert.True(t, got.Featured)
	assert.Len(t, got.Images, 2)
	require.Len(t, got.Sizes, 2)
	require.NotNil(t, got.Sizes[1].Price)
	assert.True(t, got.Sizes[1].Price.Equal(price))
}

func TestReadSheet_SkipsBadRows(t *testing.T) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	require.NoError(t, err)
	addRow := func(cells ...string) {
		row := sheet.AddRow()
		for _, c := range cells {
			row.AddCell().SetString(c)
		}
	}
	addRow(SheetHeaders...)
	addRow("", "Golden Barrel Cactus", "", "", "45")
	addRow("x", "Bad Price", "", "cacti", "lots")
	addRow("y", "Bad Category", "", "ferns", "5")
	addRow("z", "Free Plant", "", "other", "0")

	var buf bytes.Buffer
	require.NoError(t, file.Write(&buf))

	res, err := ReadSheet(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, res.Products, 1)
	assert.Equal(t, "golden-barrel-cactus", res.Products[0].ID)
	assert.Equal(t, models.CategoryCacti, res.Products[0].Category)
	assert.True(t, res.Products[0].InStock)
	assert.Equal(t, 3, res.Skipped)
	assert.Len(t, res.Warnings, 3)
}

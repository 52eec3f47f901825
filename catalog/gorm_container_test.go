//go:build container

package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/nursery-store/internal/testhelpers"
	"github.com/junaidrashid-git/nursery-store/models"
)

func TestGormRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGormRepository(testhelpers.SetupPostgres(t))

	require.NoError(t, repo.ReplaceAll(ctx, seedProducts()))

	p := seedProducts()[0]
	p.Images = []string{"https://img/1.jpg", "https://img/2.jpg"}
	p.Sizes = []models.Size{{ID: "6-inch", Label: "6 inch", Multiplier: decimal.NewFromInt(1)}}
	created, err := repo.Save(ctx, &p)
	require.NoError(t, err)
	assert.False(t, created)

	got, err := repo.Get(ctx, "golden-barrel")
	require.NoError(t, err)
	assert.Len(t, got.Images, 2)
	require.Len(t, got.Sizes, 1)
	assert.Equal(t, "6-inch", got.Sizes[0].ID)

	found, err := repo.List(ctx, Filter{Search: "AGAVE"})
	require.NoError(t, err)
	assert.Equal(t, []string{"blue-agave"}, ids(found))

	cheap := decimal.NewFromInt(20)
	found, err = repo.List(ctx, Filter{MaxPrice: &cheap, SortBy: "price"})
	require.NoError(t, err)
	assert.Equal(t, []string{"aloe-vera"}, ids(found))

	counts, err := repo.CountByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[models.CategoryAgaves])

	aloe, err := repo.Get(ctx, "aloe-vera")
	require.NoError(t, err)
	assert.False(t, aloe.InStock, "out of stock survives ReplaceAll")

	inStock, err := repo.List(ctx, Filter{InStockOnly: true})
	require.NoError(t, err)
	assert.NotContains(t, ids(inStock), "aloe-vera")

	soldOut := models.Product{ID: "old-man", Name: "Old Man 100% Fuzzy", Category: models.CategoryCacti, Price: decimal.NewFromInt(25), InStock: false}
	created, err = repo.Save(ctx, &soldOut)
	require.NoError(t, err)
	assert.True(t, created)
	got, err = repo.Get(ctx, "old-man")
	require.NoError(t, err)
	assert.False(t, got.InStock, "out of stock survives Save")

	found, err = repo.List(ctx, Filter{Search: "100%"})
	require.NoError(t, err)
	assert.Equal(t, []string{"old-man"}, ids(found))
	found, err = repo.List(ctx, Filter{Search: "%"})
	require.NoError(t, err)
	assert.Equal(t, []string{"old-man"}, ids(found), "percent matches literally")
	found, err = repo.List(ctx, Filter{Search: "_"})
	require.NoError(t, err)
	assert.Empty(t, found, "underscore matches literally")

	require.NoError(t, repo.Delete(ctx, "aloe-vera"))
	assert.ErrorIs(t, repo.Delete(ctx, "aloe-vera"), ErrNotFound)
	_, err = repo.Get(ctx, "aloe-vera")
	assert.ErrorIs(t, err, ErrNotFound)
}

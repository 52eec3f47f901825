//go:build container

package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/nursery-store/internal/testhelpers"
	"github.com/junaidrashid-git/nursery-store/models"
)

func TestGormPersister(t *testing.T) {
	ctx := context.Background()
	p := NewGormPersister(testhelpers.SetupPostgres(t))

	items, err := p.Load(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, items)

	s := openStore(t, p)
	_, err = s.AddItem(ctx, testProduct("golden-barrel", 30, models.CategoryCacti), "", 3)
	require.NoError(t, err)
	_, err = s.AddItem(ctx, testProduct("golden-barrel", 30, models.CategoryCacti), "", 1)
	require.NoError(t, err)

	reopened := openStore(t, p)
	require.Len(t, reopened.Items(), 1)
	assert.Equal(t, 4, reopened.Items()[0].Quantity)
	assert.Equal(t, s.Totals(), reopened.Totals())

	require.NoError(t, p.Delete(ctx, "session-1"))
	items, err = p.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

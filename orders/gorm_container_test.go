//go:build container

package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/nursery-store/internal/testhelpers"
	"github.com/junaidrashid-git/nursery-store/models"
)

func TestGormRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGormRepository(testhelpers.SetupPostgres(t))

	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	for i, email := range []string{"rosa@garden.test", "ivan@example.com", "ROSE@example.com"} {
		o := models.Order{
			OrderRef:      "ref-" + email,
			SessionID:     "cs_" + email,
			CustomerName:  "Customer",
			CustomerEmail: email,
			TotalAmount:   int64(1000 * (i + 1)),
			Currency:      "usd",
			PaymentStatus: models.PaymentStatusPaid,
			Status:        models.OrderStatusConfirmed,
			Items:         []models.OrderItem{{Name: "Aloe", Quantity: 1, UnitAmount: 1000, AmountTotal: 1000}},
			CreatedAt:     base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, repo.Create(ctx, &o))
	}

	dup := models.Order{OrderRef: "other", SessionID: "cs_rosa@garden.test", Currency: "usd", PaymentStatus: models.PaymentStatusPaid}
	assert.ErrorIs(t, repo.Create(ctx, &dup), ErrDuplicateSession)

	found, err := repo.FindBySession(ctx, "cs_ivan@example.com")
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Aloe", found.Items[0].Name)

	orders, total, err := repo.List(ctx, ListQuery{Search: "ros"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, "ROSE@example.com", orders[0].CustomerEmail)

	orders, total, err = repo.List(ctx, ListQuery{Search: "_"})
	require.NoError(t, err)
	assert.Zero(t, total, "underscore matches literally")
	assert.Empty(t, orders)

	found.Status = models.OrderStatusShipped
	found.TrackingNumber = "1Z"
	require.NoError(t, repo.Update(ctx, &found))

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalOrders)
	assert.Equal(t, int64(6000), stats.Revenue)
	assert.Equal(t, int64(1), stats.ByStatus[models.OrderStatusShipped])

	require.NoError(t, repo.RecordStep(ctx, models.OrderStep{SessionID: "cs_1", Step: models.StepClearCart, Outcome: models.StepFailed}))
	ok, err := repo.StepSucceeded(ctx, "cs_1", models.StepClearCart)
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, repo.RecordStep(ctx, models.OrderStep{SessionID: "cs_1", Step: models.StepClearCart, Outcome: models.StepSucceeded}))
	ok, _ = repo.StepSucceeded(ctx, "cs_1", models.StepClearCart)
	assert.True(t, ok)

	steps, err := repo.Steps(ctx, "cs_1")
	require.NoError(t, err)
	assert.Len(t, steps, 2)

	_, err = repo.Get(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormRepository_ClaimStep(t *testing.T) {
	ctx := context.Background()
	repo := NewGormRepository(testhelpers.SetupPostgres(t))

	at := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	claim := models.StepClaim{SessionID: "cs_1", Step: models.StepCustomerEmail, ClaimedAt: at}

	ok, err := repo.ClaimStep(ctx, claim, at.Add(-time.Minute))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ClaimStep(ctx, claim, at.Add(-time.Minute))
	require.NoError(t, err)
	assert.False(t, ok, "a live claim blocks a second caller")

	other := models.StepClaim{SessionID: "cs_1", Step: models.StepInternalEmail, ClaimedAt: at}
	ok, err = repo.ClaimStep(ctx, other, at.Add(-time.Minute))
	require.NoError(t, err)
	assert.True(t, ok, "claims are per step")

	later := claim
	later.ClaimedAt = at.Add(10 * time.Minute)
	ok, err = repo.ClaimStep(ctx, later, at.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, ok, "a stale claim is taken over")

	require.NoError(t, repo.ReleaseStep(ctx, "cs_1", models.StepCustomerEmail))
	ok, err = repo.ClaimStep(ctx, claim, at.Add(-time.Minute))
	require.NoError(t, err)
	assert.True(t, ok, "a released step can be claimed again")
}

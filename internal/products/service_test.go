package products

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fooddash-app/fooddash-backend/internal/restaurants"
	"github.com/fooddash-app/fooddash-backend/pkg/enums"
	pkgerrors "github.com/fooddash-app/fooddash-backend/pkg/errors"
	"github.com/fooddash-app/fooddash-backend/pkg/kv"
	"github.com/fooddash-app/fooddash-backend/pkg/models"
)

func newTestService(t *testing.T) (Service, Repository) {
	t.Helper()
	store := kv.NewMemory()

	restRepo := restaurants.NewRepository(store)
	require.NoError(t, restRepo.Add(context.Background(), models.Restaurant{
		ID: "rest1", Name: "Bella Pasta", OwnerID: "vendor1", Status: enums.RestaurantStatusApproved,
	}))

	repo := NewRepository(store)
	svc, err := NewService(repo, restRepo)
	require.NoError(t, err)
	return svc, repo
}

func TestCreateThenListRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "vendor1", CreateInput{
		RestaurantID: "rest1",
		Name:         "Margherita",
		Description:  "Tomato, mozzarella, basil",
		Price:        decimal.RequireFromString("12.50"),
		Category:     "Pizza",
		IsAvailable:  true,
		Tags:         []string{"vegetarian", "classic"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	menu, err := svc.ListByRestaurant(ctx, "rest1")
	require.NoError(t, err)
	require.Len(t, menu, 1, "product must appear exactly once")

	got := menu[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Margherita", got.Name)
	assert.Equal(t, "Tomato, mozzarella, basil", got.Description)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("12.50")))
	assert.Equal(t, []string{"vegetarian", "classic"}, got.Tags)
	assert.True(t, got.IsAvailable)
}

func TestCreateRejectsForeignRestaurant(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), "vendor2", CreateInput{
		RestaurantID: "rest1",
		Name:         "Carbonara",
		Price:        decimal.RequireFromString("14.00"),
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeForbidden, pkgerrors.As(err).Code())
}

func TestUpdateMergesPartialFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "vendor1", CreateInput{
		RestaurantID: "rest1",
		Name:         "Margherita",
		Price:        decimal.RequireFromString("12.50"),
		IsAvailable:  true,
	})
	require.NoError(t, err)

	price := decimal.RequireFromString("13.25")
	updated, err := svc.Update(ctx, "vendor1", created.ID, UpdatePatch{Price: &price})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(price))
	assert.Equal(t, "Margherita", updated.Name)
	assert.True(t, updated.IsAvailable)
}

func TestDeleteRemovesProduct(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "vendor1", CreateInput{
		RestaurantID: "rest1",
		Name:         "Tiramisu",
		Price:        decimal.RequireFromString("6.00"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "vendor1", created.ID))

	remaining, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	_, err = svc.Get(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestRepoUpdateMissIsNoOp(t *testing.T) {
	_, repo := newTestService(t)
	ctx := context.Background()

	name := "Renamed"
	changed, err := repo.Update(ctx, "prod-missing", UpdatePatch{Name: &name})
	require.NoError(t, err)
	assert.False(t, changed)
}

package restaurants

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fooddash-app/fooddash-backend/pkg/enums"
	pkgerrors "github.com/fooddash-app/fooddash-backend/pkg/errors"
	"github.com/fooddash-app/fooddash-backend/pkg/kv"
	"github.com/fooddash-app/fooddash-backend/pkg/models"
)

func newTestService(t *testing.T) (Service, Repository) {
	t.Helper()
	repo := NewRepository(kv.NewMemory())
	svc, err := NewService(repo)
	require.NoError(t, err)
	return svc, repo
}

func seedRestaurants(t *testing.T, repo Repository) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, repo.Add(ctx, models.Restaurant{
		ID: "rest1", Name: "Bella Pasta", OwnerID: "vendor1", Status: enums.RestaurantStatusApproved, IsOpen: true,
	}))
	require.NoError(t, repo.Add(ctx, models.Restaurant{
		ID: "rest2", Name: "Sushi World", OwnerID: "vendor2", Status: enums.RestaurantStatusPending,
	}))
}

func TestListApprovedOnly(t *testing.T) {
	svc, repo := newTestService(t)
	seedRestaurants(t, repo)

	all, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	approved, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, "rest1", approved[0].ID)
}

func TestGetUnknownRestaurant(t *testing.T) {
	svc, repo := newTestService(t)
	seedRestaurants(t, repo)

	_, err := svc.Get(context.Background(), "rest9")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestUpdateRejectsForeignOwner(t *testing.T) {
	svc, repo := newTestService(t)
	seedRestaurants(t, repo)

	open := false
	_, err := svc.Update(context.Background(), "vendor2", "rest1", UpdatePatch{IsOpen: &open})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeForbidden, pkgerrors.As(err).Code())
}

func TestUpdateMergesPartialFields(t *testing.T) {
	svc, repo := newTestService(t)
	seedRestaurants(t, repo)

	open := false
	phone := "555-0101"
	updated, err := svc.Update(context.Background(), "vendor1", "rest1", UpdatePatch{IsOpen: &open, Phone: &phone})
	require.NoError(t, err)

	assert.False(t, updated.IsOpen)
	assert.Equal(t, "555-0101", updated.Phone)
	assert.Equal(t, "Bella Pasta", updated.Name, "untouched fields must survive the merge")
	assert.Equal(t, enums.RestaurantStatusApproved, updated.Status)
}

func TestVendorCannotChangeOwnStatus(t *testing.T) {
	svc, repo := newTestService(t)
	seedRestaurants(t, repo)

	status := enums.RestaurantStatusApproved
	updated, err := svc.Update(context.Background(), "vendor2", "rest2", UpdatePatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, enums.RestaurantStatusPending, updated.Status, "status patch from a vendor must be dropped")
}

package vendors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fooddash-app/fooddash-backend/internal/notifications"
	"github.com/fooddash-app/fooddash-backend/internal/restaurants"
	"github.com/fooddash-app/fooddash-backend/pkg/enums"
	pkgerrors "github.com/fooddash-app/fooddash-backend/pkg/errors"
	"github.com/fooddash-app/fooddash-backend/pkg/kv"
	"github.com/fooddash-app/fooddash-backend/pkg/models"
)

func newTestService(t *testing.T) (Service, restaurants.Repository) {
	t.Helper()
	store := kv.NewMemory()
	restaurantRepo := restaurants.NewRepository(store)
	notifySvc, err := notifications.NewService(notifications.NewRepository(store))
	require.NoError(t, err)
	svc, err := NewService(NewRepository(store), restaurantRepo, notifySvc)
	require.NoError(t, err)
	return svc, restaurantRepo
}

func submit(t *testing.T, svc Service) *models.VendorApplication {
	t.Helper()
	app, err := svc.Submit(context.Background(), SubmitInput{
		Name:    "Taco Town",
		Email:   "owner@tacotown.test",
		Cuisine: "Mexican",
		Phone:   "555-0199",
		Address: "9 Side St",
	})
	require.NoError(t, err)
	return app
}

func TestSubmitStartsPending(t *testing.T) {
	svc, _ := newTestService(t)

	app := submit(t, svc)
	assert.Equal(t, enums.VendorApplicationStatusPending, app.Status)
	assert.False(t, app.SubmittedDate.IsZero())

	pending, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, app.ID, pending[0].ID)
}

func TestApproveCreatesOwnedRestaurant(t *testing.T) {
	svc, restaurantRepo := newTestService(t)
	ctx := context.Background()

	app := submit(t, svc)
	restaurant, err := svc.Approve(ctx, app.ID)
	require.NoError(t, err)

	assert.Equal(t, "Taco Town", restaurant.Name)
	assert.Equal(t, app.ID, restaurant.OwnerID)
	assert.Equal(t, enums.RestaurantStatusApproved, restaurant.Status)
	assert.True(t, restaurant.IsOpen)

	owned, err := restaurantRepo.ByOwner(ctx, app.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)

	pending, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, pending, "a decided application is no longer pending")

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, enums.VendorApplicationStatusApproved, all[0].Status)
}

func TestDecisionsAreSingleShot(t *testing.T) {
	svc, restaurantRepo := newTestService(t)
	ctx := context.Background()

	app := submit(t, svc)
	_, err := svc.Reject(ctx, app.ID)
	require.NoError(t, err)

	_, err = svc.Approve(ctx, app.ID)
	require.Error(t, err, "a rejected application cannot be approved later")
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())

	_, err = svc.Reject(ctx, app.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())

	owned, err := restaurantRepo.ByOwner(ctx, app.ID)
	require.NoError(t, err)
	assert.Empty(t, owned, "no restaurant is created for a rejected application")
}

func TestDecisionOnUnknownApplication(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Approve(context.Background(), "vnd-missing")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

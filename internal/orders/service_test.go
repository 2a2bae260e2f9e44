package orders

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fooddash-app/fooddash-backend/internal/cart"
	"github.com/fooddash-app/fooddash-backend/internal/notifications"
	"github.com/fooddash-app/fooddash-backend/internal/restaurants"
	"github.com/fooddash-app/fooddash-backend/pkg/enums"
	pkgerrors "github.com/fooddash-app/fooddash-backend/pkg/errors"
	"github.com/fooddash-app/fooddash-backend/pkg/kv"
	"github.com/fooddash-app/fooddash-backend/pkg/models"
)

type fakeProductLoader struct {
	products map[string]models.Product
}

func (f *fakeProductLoader) ByID(_ context.Context, id string) (*models.Product, error) {
	if p, ok := f.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

type fixture struct {
	store         kv.Store
	orders        Service
	carts         cart.Service
	notifications notifications.Service
	restaurants   restaurants.Repository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := kv.NewMemory()

	restaurantRepo := restaurants.NewRepository(store)
	require.NoError(t, restaurantRepo.Add(context.Background(), models.Restaurant{
		ID:      "rest1",
		Name:    "Burger Palace",
		OwnerID: "vendor1",
		Status:  enums.RestaurantStatusApproved,
	}))

	loader := &fakeProductLoader{products: map[string]models.Product{
		"prod1": {ID: "prod1", RestaurantID: "rest1", Name: "Classic Burger", Price: decimal.RequireFromString("15.99"), IsAvailable: true},
		"prod2": {ID: "prod2", RestaurantID: "rest1", Name: "Bacon Burger", Price: decimal.RequireFromString("16.99"), IsAvailable: true},
	}}

	cartSvc, err := cart.NewService(cart.NewRepository(store), loader)
	require.NoError(t, err)
	notifySvc, err := notifications.NewService(notifications.NewRepository(store))
	require.NoError(t, err)
	orderSvc, err := NewService(NewRepository(store), cartSvc, restaurantRepo, notifySvc, nil)
	require.NoError(t, err)

	return &fixture{
		store:         store,
		orders:        orderSvc,
		carts:         cartSvc,
		notifications: notifySvc,
		restaurants:   restaurantRepo,
	}
}

func (f *fixture) checkout(t *testing.T, customerID string) *models.Order {
	t.Helper()
	ctx := context.Background()
	_, err := f.carts.Add(ctx, customerID, "prod1", 1)
	require.NoError(t, err)
	_, err = f.carts.Add(ctx, customerID, "prod2", 1)
	require.NoError(t, err)

	order, err := f.orders.Checkout(ctx, CheckoutInput{
		CustomerID:      customerID,
		CustomerName:    "Alice",
		CustomerPhone:   "555-0101",
		DeliveryAddress: "1 Main St",
		PaymentMethod:   enums.PaymentMethodCard,
	})
	require.NoError(t, err)
	return order
}

func TestCheckoutSnapshotsCartAndClearsIt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order := f.checkout(t, "cust1")

	assert.Equal(t, "ORD-1001", order.ID)
	assert.Equal(t, enums.OrderStatusPlaced, order.Status)
	assert.Equal(t, "rest1", order.RestaurantID)
	assert.Equal(t, "Burger Palace", order.RestaurantName)
	assert.Equal(t, "32.98", order.Total.String())
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Classic Burger", order.Items[0].Name)
	assert.False(t, order.CreatedAt.IsZero())
	assert.Equal(t, order.CreatedAt, order.UpdatedAt)

	items, err := f.carts.Items(ctx, "cust1")
	require.NoError(t, err)
	assert.Empty(t, items, "checkout clears the cart")

	vendorInbox, err := f.notifications.ListForUser(ctx, "vendor1", true)
	require.NoError(t, err)
	require.Len(t, vendorInbox, 1)
	assert.Contains(t, vendorInbox[0].Message, "ORD-1001")
}

func TestCheckoutIDsDeriveFromOrderCount(t *testing.T) {
	f := newFixture(t)

	first := f.checkout(t, "cust1")
	second := f.checkout(t, "cust2")
	third := f.checkout(t, "cust1")

	assert.Equal(t, "ORD-1001", first.ID)
	assert.Equal(t, "ORD-1002", second.ID)
	assert.Equal(t, "ORD-1003", third.ID)
}

func TestGetForCustomerHidesOtherCustomersOrders(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order := f.checkout(t, "cust1")

	mine, err := f.orders.GetForCustomer(ctx, "cust1", order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, mine.ID)

	_, err = f.orders.GetForCustomer(ctx, "cust2", order.ID)
	require.Error(t, err, "another customer's order must read as absent")
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

type failingClearCarts struct {
	inner cart.Service
}

func (f *failingClearCarts) Items(ctx context.Context, customerID string) ([]models.CartItem, error) {
	return f.inner.Items(ctx, customerID)
}

func (f *failingClearCarts) Clear(context.Context, string) error {
	return errors.New("store write refused")
}

func TestCheckoutSurvivesFailedCartClear(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.carts.Add(ctx, "cust1", "prod1", 1)
	require.NoError(t, err)

	svc, err := NewService(NewRepository(f.store), &failingClearCarts{inner: f.carts}, f.restaurants, f.notifications, nil)
	require.NoError(t, err)

	order, err := svc.Checkout(ctx, CheckoutInput{
		CustomerID:      "cust1",
		CustomerName:    "Alice",
		CustomerPhone:   "555-0101",
		DeliveryAddress: "1 Main St",
		PaymentMethod:   enums.PaymentMethodCard,
	})
	require.NoError(t, err, "the order stands even when the cart clear fails")
	require.NotNil(t, order)

	stored, err := svc.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusPlaced, stored.Status)

	items, err := f.carts.Items(ctx, "cust1")
	require.NoError(t, err)
	assert.Len(t, items, 1, "the stale cart is the accepted trade-off")
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	f := newFixture(t)

	_, err := f.orders.Checkout(context.Background(), CheckoutInput{
		CustomerID:      "cust1",
		CustomerName:    "Alice",
		CustomerPhone:   "555-0101",
		DeliveryAddress: "1 Main St",
		PaymentMethod:   enums.PaymentMethodCash,
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestFullLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order := f.checkout(t, "cust1")

	order, err := f.orders.Accept(ctx, "vendor1", order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusAccepted, order.Status)

	order, err = f.orders.StartPreparing(ctx, "vendor1", order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusPreparing, order.Status)

	order, err = f.orders.MarkReady(ctx, "vendor1", order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusReady, order.Status)

	order, err = f.orders.Pickup(ctx, "drv1", "Dave", order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusPicked, order.Status)
	assert.Equal(t, "drv1", order.DriverID)
	assert.Equal(t, "Dave", order.DriverName)

	order, err = f.orders.Deliver(ctx, "drv1", order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusDelivered, order.Status)
	assert.True(t, order.Status.IsTerminal())
	assert.False(t, order.UpdatedAt.Before(order.CreatedAt))

	mine, err := f.orders.ListForCustomer(ctx, "cust1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, enums.OrderStatusDelivered, mine[0].Status)
}

func TestIllegalTransitionsRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order := f.checkout(t, "cust1")

	_, err := f.orders.Pickup(ctx, "drv1", "Dave", order.ID)
	require.Error(t, err, "cannot pick up an order that is not ready")
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())

	_, err = f.orders.Accept(ctx, "vendor1", order.ID)
	require.NoError(t, err)

	_, err = f.orders.Accept(ctx, "vendor1", order.ID)
	require.Error(t, err, "accept is not idempotent, the order already moved on")
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())

	_, err = f.orders.Reject(ctx, "vendor1", order.ID)
	require.Error(t, err, "an accepted order can no longer be rejected")
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())
}

func TestVendorOwnershipEnforced(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order := f.checkout(t, "cust1")

	_, err := f.orders.Accept(ctx, "vendor2", order.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeForbidden, pkgerrors.As(err).Code())
}

func TestDriverClaimAndDeliverGuards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order := f.checkout(t, "cust1")
	_, err := f.orders.Accept(ctx, "vendor1", order.ID)
	require.NoError(t, err)
	_, err = f.orders.StartPreparing(ctx, "vendor1", order.ID)
	require.NoError(t, err)
	_, err = f.orders.MarkReady(ctx, "vendor1", order.ID)
	require.NoError(t, err)

	_, err = f.orders.Pickup(ctx, "drv1", "Dave", order.ID)
	require.NoError(t, err)

	_, err = f.orders.Pickup(ctx, "drv2", "Erin", order.ID)
	require.Error(t, err, "a claimed order leaves the pool")
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())

	_, err = f.orders.Deliver(ctx, "drv2", order.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeForbidden, pkgerrors.As(err).Code())

	_, err = f.orders.Deliver(ctx, "drv1", order.ID)
	require.NoError(t, err)
}

func TestDriverPools(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ready := f.checkout(t, "cust1")
	carried := f.checkout(t, "cust2")
	done := f.checkout(t, "cust3")

	advance := func(id string, steps ...func(context.Context, string, string) (*models.Order, error)) {
		for _, step := range steps {
			_, err := step(ctx, "vendor1", id)
			require.NoError(t, err)
		}
	}
	advance(ready.ID, f.orders.Accept, f.orders.StartPreparing, f.orders.MarkReady)
	advance(carried.ID, f.orders.Accept, f.orders.StartPreparing, f.orders.MarkReady)
	advance(done.ID, f.orders.Accept, f.orders.StartPreparing, f.orders.MarkReady)

	_, err := f.orders.Pickup(ctx, "drv1", "Dave", carried.ID)
	require.NoError(t, err)
	_, err = f.orders.Pickup(ctx, "drv1", "Dave", done.ID)
	require.NoError(t, err)
	_, err = f.orders.Deliver(ctx, "drv1", done.ID)
	require.NoError(t, err)

	pool, err := f.orders.AvailableForDriver(ctx)
	require.NoError(t, err)
	require.Len(t, pool, 1, "claimed and delivered orders leave the pool")
	assert.Equal(t, ready.ID, pool[0].ID)

	active, err := f.orders.ActiveForDriver(ctx, "drv1")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, carried.ID, active[0].ID)

	completed, err := f.orders.CompletedForDriver(ctx, "drv1")
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, done.ID, completed[0].ID)
}

func TestListForVendorScopesToOwnedRestaurants(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.restaurants.Add(ctx, models.Restaurant{
		ID:      "rest2",
		Name:    "Pasta Corner",
		OwnerID: "vendor2",
		Status:  enums.RestaurantStatusApproved,
	}))

	order := f.checkout(t, "cust1")

	mine, err := f.orders.ListForVendor(ctx, "vendor1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, order.ID, mine[0].ID)

	theirs, err := f.orders.ListForVendor(ctx, "vendor2")
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

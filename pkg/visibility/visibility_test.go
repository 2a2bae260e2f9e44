package visibility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fooddash-app/fooddash-backend/pkg/enums"
	"github.com/fooddash-app/fooddash-backend/pkg/models"
)

func fixtureOrders() []models.Order {
	return []models.Order{
		{ID: "ORD-1001", CustomerID: "cust1", RestaurantID: "rest1", Status: enums.OrderStatusReady},
		{ID: "ORD-1002", CustomerID: "cust2", RestaurantID: "rest1", Status: enums.OrderStatusReady, DriverID: "drv1"},
		{ID: "ORD-1003", CustomerID: "cust1", RestaurantID: "rest2", Status: enums.OrderStatusPicked, DriverID: "drv1"},
		{ID: "ORD-1004", CustomerID: "cust3", RestaurantID: "rest3", Status: enums.OrderStatusDelivered, DriverID: "drv1"},
		{ID: "ORD-1005", CustomerID: "cust2", RestaurantID: "rest2", Status: enums.OrderStatusPlaced},
		{ID: "ORD-1006", CustomerID: "cust3", RestaurantID: "rest1", Status: enums.OrderStatusDelivered, DriverID: "drv2"},
	}
}

func idsOf(orders []models.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func TestOrdersForCustomer(t *testing.T) {
	got := OrdersForCustomer(fixtureOrders(), "cust1")
	assert.Equal(t, []string{"ORD-1001", "ORD-1003"}, idsOf(got))

	assert.Empty(t, OrdersForCustomer(fixtureOrders(), "cust1-no-such"), "exact match, not a prefix match")
}

func TestOrdersForVendor(t *testing.T) {
	got := OrdersForVendor(fixtureOrders(), []string{"rest1", "rest3"})
	assert.Equal(t, []string{"ORD-1001", "ORD-1002", "ORD-1004", "ORD-1006"}, idsOf(got))

	assert.Empty(t, OrdersForVendor(fixtureOrders(), nil))
}

func TestAvailableOrdersForDriver(t *testing.T) {
	got := AvailableOrdersForDriver(fixtureOrders())
	assert.Equal(t, []string{"ORD-1001"}, idsOf(got))

	for _, order := range got {
		assert.Empty(t, order.DriverID, "claimed orders must never appear in the available pool")
		assert.Equal(t, enums.OrderStatusReady, order.Status)
	}
}

func TestDriverPools(t *testing.T) {
	active := ActiveOrdersForDriver(fixtureOrders(), "drv1")
	assert.Equal(t, []string{"ORD-1003"}, idsOf(active))

	completed := CompletedOrdersForDriver(fixtureOrders(), "drv1")
	assert.Equal(t, []string{"ORD-1004"}, idsOf(completed))

	assert.Empty(t, ActiveOrdersForDriver(fixtureOrders(), "drv9"))
}

package visibility

import (
	"github.com/fooddash-app/fooddash-backend/pkg/enums"
	"github.com/fooddash-app/fooddash-backend/pkg/models"
)

// Each filter is a pure predicate over the full order collection; insertion
// order is preserved and the match is exact, never fuzzy.

// OrdersForCustomer returns orders placed by the given customer.
func OrdersForCustomer(orders []models.Order, customerID string) []models.Order {
	return filter(orders, func(o models.Order) bool {
		return o.CustomerID == customerID
	})
}

// OrdersForVendor returns orders addressed to any of the vendor's restaurants.
func OrdersForVendor(orders []models.Order, restaurantIDs []string) []models.Order {
	owned := make(map[string]struct{}, len(restaurantIDs))
	for _, id := range restaurantIDs {
		owned[id] = struct{}{}
	}
	return filter(orders, func(o models.Order) bool {
		_, ok := owned[o.RestaurantID]
		return ok
	})
}

// AvailableOrdersForDriver returns the unclaimed pool: ready for pickup and
// not yet assigned to any driver.
func AvailableOrdersForDriver(orders []models.Order) []models.Order {
	return filter(orders, func(o models.Order) bool {
		return o.Status == enums.OrderStatusReady && o.DriverID == ""
	})
}

// ActiveOrdersForDriver returns orders the given driver is currently carrying.
func ActiveOrdersForDriver(orders []models.Order, driverID string) []models.Order {
	return filter(orders, func(o models.Order) bool {
		return o.DriverID == driverID && o.Status == enums.OrderStatusPicked
	})
}

// CompletedOrdersForDriver returns orders the given driver has delivered.
func CompletedOrdersForDriver(orders []models.Order, driverID string) []models.Order {
	return filter(orders, func(o models.Order) bool {
		return o.DriverID == driverID && o.Status == enums.OrderStatusDelivered
	})
}

func filter(orders []models.Order, keep func(models.Order) bool) []models.Order {
	matched := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if keep(order) {
			matched = append(matched, order)
		}
	}
	return matched
}

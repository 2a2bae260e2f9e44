package enums

import "fmt"

// OrderStatus tracks the delivery lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusRejected  OrderStatus = "rejected"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusPicked    OrderStatus = "picked"
	OrderStatusDelivered OrderStatus = "delivered"
)

var validOrderStatuses = []OrderStatus{
	OrderStatusPlaced,
	OrderStatusAccepted,
	OrderStatusRejected,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusPicked,
	OrderStatusDelivered,
}

// orderTransitions is the single source of truth for legal status moves.
// delivered and rejected are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPlaced:    {OrderStatusAccepted, OrderStatusRejected},
	OrderStatusAccepted:  {OrderStatusPreparing},
	OrderStatusPreparing: {OrderStatusReady},
	OrderStatusReady:     {OrderStatusPicked},
	OrderStatusPicked:    {OrderStatusDelivered},
	OrderStatusRejected:  {},
	OrderStatusDelivered: {},
}

// String implements fmt.Stringer.
func (o OrderStatus) String() string {
	return string(o)
}

// IsValid reports whether the value is a known OrderStatus.
func (o OrderStatus) IsValid() bool {
	for _, candidate := range validOrderStatuses {
		if candidate == o {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (o OrderStatus) IsTerminal() bool {
	return len(orderTransitions[o]) == 0 && o.IsValid()
}

// CanTransitionTo reports whether moving from the current status to next is legal.
func (o OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, candidate := range orderTransitions[o] {
		if candidate == next {
			return true
		}
	}
	return false
}

// ParseOrderStatus converts raw input into an OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range validOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}

package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fooddash-app/fooddash-backend/pkg/enums"
)

// OrderItem is a value snapshot of a product at checkout time. It never
// references the live Product record.
type OrderItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Order is created once at checkout with immutable items and total. Only the
// status, the driver assignment and UpdatedAt mutate afterwards; orders are
// never deleted.
type Order struct {
	ID              string              `json:"id"`
	CustomerID      string              `json:"customerId"`
	CustomerName    string              `json:"customerName"`
	CustomerPhone   string              `json:"customerPhone"`
	RestaurantID    string              `json:"restaurantId"`
	RestaurantName  string              `json:"restaurantName"`
	DriverID        string              `json:"driverId,omitempty"`
	DriverName      string              `json:"driverName,omitempty"`
	Items           []OrderItem         `json:"items"`
	Status          enums.OrderStatus   `json:"status"`
	Total           decimal.Decimal     `json:"total"`
	DeliveryAddress string              `json:"deliveryAddress"`
	PaymentMethod   enums.PaymentMethod `json:"paymentMethod"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

package models

import "github.com/shopspring/decimal"

// CartItem is one line in a customer's cart. Quantity is always positive;
// a line whose quantity drops to zero is removed, never kept at zero.
type CartItem struct {
	ProductID    string          `json:"productId"`
	RestaurantID string          `json:"restaurantId"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	Image        string          `json:"image"`
}

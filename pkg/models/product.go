package models

import "github.com/shopspring/decimal"

// Product is a single menu item owned by a restaurant.
type Product struct {
	ID           string          `json:"id"`
	RestaurantID string          `json:"restaurantId"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	Image        string          `json:"image"`
	IsAvailable  bool            `json:"isAvailable"`
	Tags         []string        `json:"tags"`
}

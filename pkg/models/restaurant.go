package models

import "github.com/fooddash-app/fooddash-backend/pkg/enums"

// Restaurant is a storefront listed on the platform. Restaurants are created
// by seeding or by approving a vendor application and are never deleted.
type Restaurant struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	Cuisine      string                 `json:"cuisine"`
	Rating       float64                `json:"rating"`
	ReviewCount  int                    `json:"reviewCount"`
	DeliveryTime string                 `json:"deliveryTime"`
	PriceRange   string                 `json:"priceRange"`
	Image        string                 `json:"image"`
	Address      string                 `json:"address"`
	Phone        string                 `json:"phone"`
	IsOpen       bool                   `json:"isOpen"`
	OwnerID      string                 `json:"ownerId"`
	Status       enums.RestaurantStatus `json:"status"`
}

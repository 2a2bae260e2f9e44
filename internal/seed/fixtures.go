package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fooddash-app/fooddash-backend/pkg/enums"
	"github.com/fooddash-app/fooddash-backend/pkg/models"
)

// The demo dataset uses fixed ids so dashboards and tests can refer to the
// same records across resets.

func demoRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{
			ID:           "rest-1",
			Name:         "Burger Palace",
			Description:  "Smash burgers and hand cut fries",
			Cuisine:      "American",
			Rating:       4.6,
			ReviewCount:  284,
			DeliveryTime: "20-30 min",
			PriceRange:   "$$",
			Image:        "https://images.fooddash.test/rest-1.jpg",
			Address:      "12 Grand Ave",
			Phone:        "555-0110",
			IsOpen:       true,
			OwnerID:      "vendor-1",
			Status:       enums.RestaurantStatusApproved,
		},
		{
			ID:           "rest-2",
			Name:         "Sakura Sushi",
			Description:  "Nigiri, rolls and bento boxes",
			Cuisine:      "Japanese",
			Rating:       4.8,
			ReviewCount:  512,
			DeliveryTime: "30-45 min",
			PriceRange:   "$$$",
			Image:        "https://images.fooddash.test/rest-2.jpg",
			Address:      "88 Cherry Blossom Rd",
			Phone:        "555-0111",
			IsOpen:       true,
			OwnerID:      "vendor-2",
			Status:       enums.RestaurantStatusApproved,
		},
		{
			ID:           "rest-3",
			Name:         "Napoli Express",
			Description:  "Wood fired pizza and fresh pasta",
			Cuisine:      "Italian",
			Rating:       4.4,
			ReviewCount:  167,
			DeliveryTime: "25-40 min",
			PriceRange:   "$$",
			Image:        "https://images.fooddash.test/rest-3.jpg",
			Address:      "3 Harbour St",
			Phone:        "555-0112",
			IsOpen:       false,
			OwnerID:      "vendor-3",
			Status:       enums.RestaurantStatusApproved,
		},
	}
}

func demoProducts() []models.Product {
	return []models.Product{
		{
			ID:           "prod-1",
			RestaurantID: "rest-1",
			Name:         "Classic Burger",
			Description:  "Beef patty, cheddar, pickles",
			Price:        decimal.RequireFromString("15.99"),
			Category:     "Burgers",
			Image:        "https://images.fooddash.test/prod-1.jpg",
			IsAvailable:  true,
			Tags:         []string{"bestseller"},
		},
		{
			ID:           "prod-2",
			RestaurantID: "rest-1",
			Name:         "Bacon Burger",
			Description:  "Double smoked bacon and barbecue sauce",
			Price:        decimal.RequireFromString("16.99"),
			Category:     "Burgers",
			Image:        "https://images.fooddash.test/prod-2.jpg",
			IsAvailable:  true,
			Tags:         []string{"spicy"},
		},
		{
			ID:           "prod-3",
			RestaurantID: "rest-1",
			Name:         "Hand Cut Fries",
			Description:  "Twice fried, sea salt",
			Price:        decimal.RequireFromString("4.99"),
			Category:     "Sides",
			Image:        "https://images.fooddash.test/prod-3.jpg",
			IsAvailable:  true,
		},
		{
			ID:           "prod-4",
			RestaurantID: "rest-2",
			Name:         "Salmon Nigiri Set",
			Description:  "Eight pieces, fresh wasabi",
			Price:        decimal.RequireFromString("21.50"),
			Category:     "Nigiri",
			Image:        "https://images.fooddash.test/prod-4.jpg",
			IsAvailable:  true,
			Tags:         []string{"bestseller"},
		},
		{
			ID:           "prod-5",
			RestaurantID: "rest-2",
			Name:         "Dragon Roll",
			Description:  "Eel, avocado, tobiko",
			Price:        decimal.RequireFromString("18.00"),
			Category:     "Rolls",
			Image:        "https://images.fooddash.test/prod-5.jpg",
			IsAvailable:  true,
		},
		{
			ID:           "prod-6",
			RestaurantID: "rest-3",
			Name:         "Margherita",
			Description:  "San Marzano tomatoes, basil",
			Price:        decimal.RequireFromString("13.50"),
			Category:     "Pizza",
			Image:        "https://images.fooddash.test/prod-6.jpg",
			IsAvailable:  false,
		},
	}
}

func demoVendorApplications(submitted time.Time) []models.VendorApplication {
	return []models.VendorApplication{
		{
			ID:            "vnd-1",
			Name:          "Taco Town",
			Email:         "owner@tacotown.test",
			Cuisine:       "Mexican",
			Phone:         "555-0120",
			Address:       "9 Side St",
			SubmittedDate: submitted,
			Status:        enums.VendorApplicationStatusPending,
		},
		{
			ID:            "vnd-2",
			Name:          "Pho Garden",
			Email:         "hello@phogarden.test",
			Cuisine:       "Vietnamese",
			Phone:         "555-0121",
			Address:       "41 Riverside Walk",
			SubmittedDate: submitted,
			Status:        enums.VendorApplicationStatusPending,
		},
	}
}

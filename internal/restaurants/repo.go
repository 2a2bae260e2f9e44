package restaurants

import (
	"context"

	"github.com/fooddash-app/fooddash-backend/internal/repo"
	"github.com/fooddash-app/fooddash-backend/pkg/enums"
	"github.com/fooddash-app/fooddash-backend/pkg/kv"
	"github.com/fooddash-app/fooddash-backend/pkg/models"
)

// Repository exposes persistence helpers for restaurants.
type Repository interface {
	All(ctx context.Context) ([]models.Restaurant, error)
	ByID(ctx context.Context, id string) (*models.Restaurant, error)
	ByOwner(ctx context.Context, ownerID string) ([]models.Restaurant, error)
	Add(ctx context.Context, restaurant models.Restaurant) error
	Update(ctx context.Context, id string, patch UpdatePatch) (bool, error)
}

// UpdatePatch carries the fields a partial restaurant update may touch.
// Nil fields are left untouched.
type UpdatePatch struct {
	Name         *string                 `json:"name"`
	Description  *string                 `json:"description"`
	Cuisine      *string                 `json:"cuisine"`
	Rating       *float64                `json:"rating"`
	ReviewCount  *int                    `json:"reviewCount"`
	DeliveryTime *string                 `json:"deliveryTime"`
	PriceRange   *string                 `json:"priceRange"`
	Image        *string                 `json:"image"`
	Address      *string                 `json:"address"`
	Phone        *string                 `json:"phone"`
	IsOpen       *bool                   `json:"isOpen"`
	Status       *enums.RestaurantStatus `json:"status"`
}

type repositoryImpl struct {
	coll repo.Collection[models.Restaurant]
}

// NewRepository returns a restaurants repository bound to the provided store.
func NewRepository(store kv.Store) Repository {
	return &repositoryImpl{coll: repo.NewCollection[models.Restaurant](store, kv.KeyRestaurants)}
}

func (r *repositoryImpl) All(ctx context.Context) ([]models.Restaurant, error) {
	return r.coll.All(ctx)
}

func (r *repositoryImpl) ByID(ctx context.Context, id string) (*models.Restaurant, error) {
	matches, err := r.coll.Filter(ctx, func(rest models.Restaurant) bool { return rest.ID == id })
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

func (r *repositoryImpl) ByOwner(ctx context.Context, ownerID string) ([]models.Restaurant, error) {
	return r.coll.Filter(ctx, func(rest models.Restaurant) bool { return rest.OwnerID == ownerID })
}

func (r *repositoryImpl) Add(ctx context.Context, restaurant models.Restaurant) error {
	return r.coll.Append(ctx, restaurant)
}

func (r *repositoryImpl) Update(ctx context.Context, id string, patch UpdatePatch) (bool, error) {
	return r.coll.Update(ctx,
		func(rest models.Restaurant) bool { return rest.ID == id },
		func(rest models.Restaurant) models.Restaurant { return patch.applyTo(rest) },
	)
}

func (p UpdatePatch) applyTo(rest models.Restaurant) models.Restaurant {
	if p.Name != nil {
		rest.Name = *p.Name
	}
	if p.Description != nil {
		rest.Description = *p.Description
	}
	if p.Cuisine != nil {
		rest.Cuisine = *p.Cuisine
	}
	if p.Rating != nil {
		rest.Rating = *p.Rating
	}
	if p.ReviewCount != nil {
		rest.ReviewCount = *p.ReviewCount
	}
	if p.DeliveryTime != nil {
		rest.DeliveryTime = *p.DeliveryTime
	}
	if p.PriceRange != nil {
		rest.PriceRange = *p.PriceRange
	}
	if p.Image != nil {
		rest.Image = *p.Image
	}
	if p.Address != nil {
		rest.Address = *p.Address
	}
	if p.Phone != nil {
		rest.Phone = *p.Phone
	}
	if p.IsOpen != nil {
		rest.IsOpen = *p.IsOpen
	}
	if p.Status != nil {
		rest.Status = *p.Status
	}
	return rest
}

package products

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fooddash-app/fooddash-backend/internal/repo"
	"github.com/fooddash-app/fooddash-backend/pkg/kv"
	"github.com/fooddash-app/fooddash-backend/pkg/models"
)

// Repository exposes persistence helpers for menu products.
type Repository interface {
	All(ctx context.Context) ([]models.Product, error)
	ByID(ctx context.Context, id string) (*models.Product, error)
	ByRestaurant(ctx context.Context, restaurantID string) ([]models.Product, error)
	Add(ctx context.Context, product models.Product) error
	Update(ctx context.Context, id string, patch UpdatePatch) (bool, error)
	Remove(ctx context.Context, id string) (bool, error)
}

// UpdatePatch carries the fields a partial product update may touch.
type UpdatePatch struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	Image       *string          `json:"image"`
	IsAvailable *bool            `json:"isAvailable"`
	Tags        *[]string        `json:"tags"`
}

type repositoryImpl struct {
	coll repo.Collection[models.Product]
}

// NewRepository returns a products repository bound to the provided store.
func NewRepository(store kv.Store) Repository {
	return &repositoryImpl{coll: repo.NewCollection[models.Product](store, kv.KeyProducts)}
}

func (r *repositoryImpl) All(ctx context.Context) ([]models.Product, error) {
	return r.coll.All(ctx)
}

func (r *repositoryImpl) ByID(ctx context.Context, id string) (*models.Product, error) {
	matches, err := r.coll.Filter(ctx, func(p models.Product) bool { return p.ID == id })
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

func (r *repositoryImpl) ByRestaurant(ctx context.Context, restaurantID string) ([]models.Product, error) {
	return r.coll.Filter(ctx, func(p models.Product) bool { return p.RestaurantID == restaurantID })
}

func (r *repositoryImpl) Add(ctx context.Context, product models.Product) error {
	return r.coll.Append(ctx, product)
}

func (r *repositoryImpl) Update(ctx context.Context, id string, patch UpdatePatch) (bool, error) {
	return r.coll.Update(ctx,
		func(p models.Product) bool { return p.ID == id },
		func(p models.Product) models.Product { return patch.applyTo(p) },
	)
}

func (r *repositoryImpl) Remove(ctx context.Context, id string) (bool, error) {
	return r.coll.Remove(ctx, func(p models.Product) bool { return p.ID == id })
}

func (p UpdatePatch) applyTo(product models.Product) models.Product {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Category != nil {
		product.Category = *p.Category
	}
	if p.Image != nil {
		product.Image = *p.Image
	}
	if p.IsAvailable != nil {
		product.IsAvailable = *p.IsAvailable
	}
	if p.Tags != nil {
		product.Tags = *p.Tags
	}
	return product
}

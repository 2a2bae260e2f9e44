package orders

import (
	"context"

	"github.com/fooddash-app/fooddash-backend/internal/repo"
	"github.com/fooddash-app/fooddash-backend/pkg/kv"
	"github.com/fooddash-app/fooddash-backend/pkg/models"
)

// Repository exposes persistence helpers for orders. Orders are append-only
// records; Update mutates an existing order in place and never removes one.
type Repository interface {
	All(ctx context.Context) ([]models.Order, error)
	ByID(ctx context.Context, id string) (*models.Order, error)
	Append(ctx context.Context, order models.Order) error
	Update(ctx context.Context, id string, apply func(models.Order) models.Order) (bool, error)
	Count(ctx context.Context) (int, error)
}

type repositoryImpl struct {
	coll repo.Collection[models.Order]
}

// NewRepository builds an order repository over the given store.
func NewRepository(store kv.Store) Repository {
	return &repositoryImpl{coll: repo.NewCollection[models.Order](store, kv.KeyOrders)}
}

func (r *repositoryImpl) All(ctx context.Context) ([]models.Order, error) {
	return r.coll.All(ctx)
}

func (r *repositoryImpl) ByID(ctx context.Context, id string) (*models.Order, error) {
	matches, err := r.coll.Filter(ctx, func(o models.Order) bool { return o.ID == id })
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

func (r *repositoryImpl) Append(ctx context.Context, order models.Order) error {
	return r.coll.Append(ctx, order)
}

func (r *repositoryImpl) Update(ctx context.Context, id string, apply func(models.Order) models.Order) (bool, error) {
	return r.coll.Update(ctx,
		func(o models.Order) bool { return o.ID == id },
		apply,
	)
}

func (r *repositoryImpl) Count(ctx context.Context) (int, error) {
	all, err := r.coll.All(ctx)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

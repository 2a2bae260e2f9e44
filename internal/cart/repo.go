package cart

import (
	"context"

	"github.com/fooddash-app/fooddash-backend/internal/repo"
	"github.com/fooddash-app/fooddash-backend/pkg/kv"
	"github.com/fooddash-app/fooddash-backend/pkg/models"
)

// Repository exposes persistence helpers for per-customer carts.
type Repository interface {
	Items(ctx context.Context, customerID string) ([]models.CartItem, error)
	Replace(ctx context.Context, customerID string, items []models.CartItem) error
	Clear(ctx context.Context, customerID string) error
}

type repositoryImpl struct {
	store kv.Store
}

// NewRepository returns a cart repository bound to the provided store.
func NewRepository(store kv.Store) Repository {
	return &repositoryImpl{store: store}
}

func (r *repositoryImpl) collection(customerID string) repo.Collection[models.CartItem] {
	return repo.NewCollection[models.CartItem](r.store, kv.CartKey(customerID))
}

func (r *repositoryImpl) Items(ctx context.Context, customerID string) ([]models.CartItem, error) {
	return r.collection(customerID).All(ctx)
}

func (r *repositoryImpl) Replace(ctx context.Context, customerID string, items []models.CartItem) error {
	return r.collection(customerID).Replace(ctx, items)
}

func (r *repositoryImpl) Clear(ctx context.Context, customerID string) error {
	return r.store.Delete(ctx, kv.CartKey(customerID))
}

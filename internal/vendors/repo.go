package vendors

import (
	"context"

	"github.com/fooddash-app/fooddash-backend/internal/repo"
	"github.com/fooddash-app/fooddash-backend/pkg/kv"
	"github.com/fooddash-app/fooddash-backend/pkg/models"
)

// Repository exposes persistence helpers for vendor applications.
// Applications keep their decision on the record instead of being removed.
type Repository interface {
	All(ctx context.Context) ([]models.VendorApplication, error)
	ByID(ctx context.Context, id string) (*models.VendorApplication, error)
	Append(ctx context.Context, application models.VendorApplication) error
	Update(ctx context.Context, id string, apply func(models.VendorApplication) models.VendorApplication) (bool, error)
}

type repositoryImpl struct {
	coll repo.Collection[models.VendorApplication]
}

// NewRepository builds a vendor application repository over the given store.
func NewRepository(store kv.Store) Repository {
	return &repositoryImpl{coll: repo.NewCollection[models.VendorApplication](store, kv.KeyVendorApplications)}
}

func (r *repositoryImpl) All(ctx context.Context) ([]models.VendorApplication, error) {
	return r.coll.All(ctx)
}

func (r *repositoryImpl) ByID(ctx context.Context, id string) (*models.VendorApplication, error) {
	matches, err := r.coll.Filter(ctx, func(app models.VendorApplication) bool { return app.ID == id })
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

func (r *repositoryImpl) Append(ctx context.Context, application models.VendorApplication) error {
	return r.coll.Append(ctx, application)
}

func (r *repositoryImpl) Update(ctx context.Context, id string, apply func(models.VendorApplication) models.VendorApplication) (bool, error) {
	return r.coll.Update(ctx,
		func(app models.VendorApplication) bool { return app.ID == id },
		apply,
	)
}

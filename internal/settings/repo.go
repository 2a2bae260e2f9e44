package settings

import (
	"context"

	"github.com/fooddash-app/fooddash-backend/pkg/kv"
	"github.com/fooddash-app/fooddash-backend/pkg/models"
)

// Repository reads and writes the singleton platform settings record.
type Repository interface {
	Get(ctx context.Context) (*models.PlatformSettings, error)
	Set(ctx context.Context, settings models.PlatformSettings) error
}

type repositoryImpl struct {
	store kv.Store
}

// NewRepository builds a settings repository over the given store.
func NewRepository(store kv.Store) Repository {
	return &repositoryImpl{store: store}
}

func (r *repositoryImpl) Get(ctx context.Context) (*models.PlatformSettings, error) {
	var settings models.PlatformSettings
	found, err := r.store.Get(ctx, kv.KeySettings, &settings)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &settings, nil
}

func (r *repositoryImpl) Set(ctx context.Context, settings models.PlatformSettings) error {
	return r.store.Set(ctx, kv.KeySettings, settings)
}

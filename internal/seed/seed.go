package seed

import (
	"context"
	"time"

	"go.uber.org/multierr"

	"github.com/fooddash-app/fooddash-backend/internal/settings"
	pkgerrors "github.com/fooddash-app/fooddash-backend/pkg/errors"
	"github.com/fooddash-app/fooddash-backend/pkg/kv"
	"github.com/fooddash-app/fooddash-backend/pkg/logger"
)

// Seeder populates the store with the demo dataset on first run.
type Seeder struct {
	store kv.Store
	logg  *logger.Logger
}

// New builds a seeder over the given store.
func New(store kv.Store, logg *logger.Logger) (*Seeder, error) {
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "store required")
	}
	return &Seeder{store: store, logg: logg}, nil
}

// Initialize writes the demo dataset unless the sentinel says it already
// happened. Running it any number of times after the first is a no-op, so
// existing data (including orders) survives process restarts.
func (s *Seeder) Initialize(ctx context.Context) error {
	var done bool
	found, err := s.store.Get(ctx, kv.KeyInitialized, &done)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read seed sentinel")
	}
	if found && done {
		return nil
	}

	if err := s.store.Set(ctx, kv.KeyRestaurants, demoRestaurants()); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "seed restaurants")
	}
	if err := s.store.Set(ctx, kv.KeyProducts, demoProducts()); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "seed products")
	}
	if err := s.store.Set(ctx, kv.KeyVendorApplications, demoVendorApplications(time.Now().UTC())); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "seed vendor applications")
	}
	if err := s.store.Set(ctx, kv.KeySettings, settings.Defaults()); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "seed settings")
	}
	if err := s.store.Set(ctx, kv.KeyInitialized, true); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "write seed sentinel")
	}
	if s.logg != nil {
		s.logg.Info(ctx, "demo data seeded")
	}
	return nil
}

// Reset deletes every namespaced key, carts and sentinel included, then
// seeds again. Deletion failures are collected so one bad key does not
// leave the rest of the namespace behind.
func (s *Seeder) Reset(ctx context.Context) error {
	keys, err := s.store.Keys(ctx, kv.Namespace)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list keys")
	}
	var deleteErr error
	for _, key := range keys {
		deleteErr = multierr.Append(deleteErr, s.store.Delete(ctx, key))
	}
	if deleteErr != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, deleteErr, "clear namespace")
	}
	if s.logg != nil {
		s.logg.Info(ctx, "store reset")
	}
	return s.Initialize(ctx)
}

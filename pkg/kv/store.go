package kv

import (
	"context"
	"strings"

	"github.com/fooddash-app/fooddash-backend/pkg/config"
	"github.com/fooddash-app/fooddash-backend/pkg/logger"
)

// Namespace prefixes every key this application writes.
const Namespace = "fooddash:"

// Recognized store keys. Carts are keyed per customer under the cart prefix.
const (
	KeyRestaurants        = Namespace + "restaurants"
	KeyProducts           = Namespace + "products"
	KeyOrders             = Namespace + "orders"
	KeyVendorApplications = Namespace + "pendingVendors"
	KeySettings           = Namespace + "settings"
	KeyNotifications      = Namespace + "notifications"
	KeyInitialized        = Namespace + "initialized"

	cartKeyPrefix = Namespace + "cart:"
)

// CartKey returns the store key holding the given customer's cart.
func CartKey(customerID string) string {
	return cartKeyPrefix + customerID
}

// Store is a namespaced key-value store holding whole-value JSON blobs.
// Malformed stored data reads as absent; Get never fails on bad payloads.
type Store interface {
	// Get unmarshals the value under key into dest and reports whether a
	// usable value was present.
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Set serializes value as JSON and replaces whatever is stored under key.
	Set(ctx context.Context, key string, value any) error
	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
	// Keys lists the stored keys matching the given prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}

// Open returns a store for the configured driver. When the durable medium
// cannot be opened the process keeps running on the in-memory fallback:
// reads come back absent and writes persist only for the process lifetime.
func Open(ctx context.Context, cfg config.StoreConfig, logg *logger.Logger) Store {
	if cfg.Driver == config.StoreDriverMemory {
		return NewMemory()
	}

	store, err := NewSQLite(cfg.Path)
	if err != nil {
		if logg != nil {
			logg.Error(ctx, "store medium unavailable, falling back to memory", err)
		}
		return NewMemory()
	}
	if logg != nil {
		logg.Info(logg.WithField(ctx, "path", cfg.Path), "store opened")
	}
	return store
}

// Collection extracts the collection name from a namespaced key, for use as
// a bounded metrics label (per-customer cart keys collapse to "cart").
func Collection(key string) string {
	trimmed := strings.TrimPrefix(key, Namespace)
	if name, _, found := strings.Cut(trimmed, ":"); found {
		return name
	}
	return trimmed
}

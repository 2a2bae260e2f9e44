package repo

import (
	"context"

	"github.com/fooddash-app/fooddash-backend/pkg/kv"
)

// Collection provides the shared whole-value read-modify-write foundation for
// domain repositories. Every mutation reads the full collection, changes it in
// memory and writes it back; there is no partial write and no cross-collection
// atomicity.
type Collection[T any] struct {
	store kv.Store
	key   string
}

// NewCollection binds a typed collection to its store key.
func NewCollection[T any](store kv.Store, key string) Collection[T] {
	return Collection[T]{store: store, key: key}
}

// Key returns the store key backing this collection.
func (c Collection[T]) Key() string {
	return c.key
}

// All returns the full collection in insertion order. An uninitialized or
// malformed value reads as an empty collection.
func (c Collection[T]) All(ctx context.Context) ([]T, error) {
	var items []T
	found, err := c.store.Get(ctx, c.key, &items)
	if err != nil {
		return nil, err
	}
	if !found || items == nil {
		return []T{}, nil
	}
	return items, nil
}

// Replace overwrites the whole collection.
func (c Collection[T]) Replace(ctx context.Context, items []T) error {
	return c.store.Set(ctx, c.key, items)
}

// Append adds one element to the end of the collection. Uniqueness is the
// caller's responsibility.
func (c Collection[T]) Append(ctx context.Context, item T) error {
	items, err := c.All(ctx)
	if err != nil {
		return err
	}
	return c.Replace(ctx, append(items, item))
}

// Update applies apply to the first element matching match and rewrites the
// collection. A miss leaves the collection untouched and reports false.
func (c Collection[T]) Update(ctx context.Context, match func(T) bool, apply func(T) T) (bool, error) {
	items, err := c.All(ctx)
	if err != nil {
		return false, err
	}
	for i, item := range items {
		if match(item) {
			items[i] = apply(item)
			return true, c.Replace(ctx, items)
		}
	}
	return false, nil
}

// Remove filters out the first element matching match. A miss leaves the
// collection untouched and reports false.
func (c Collection[T]) Remove(ctx context.Context, match func(T) bool) (bool, error) {
	items, err := c.All(ctx)
	if err != nil {
		return false, err
	}
	for i, item := range items {
		if match(item) {
			items = append(items[:i], items[i+1:]...)
			return true, c.Replace(ctx, items)
		}
	}
	return false, nil
}

// Filter returns the elements matching keep, preserving insertion order.
func (c Collection[T]) Filter(ctx context.Context, keep func(T) bool) ([]T, error) {
	items, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

package notifications

import (
	"context"

	"github.com/fooddash-app/fooddash-backend/internal/repo"
	"github.com/fooddash-app/fooddash-backend/pkg/kv"
	"github.com/fooddash-app/fooddash-backend/pkg/models"
)

// Repository exposes persistence helpers for notifications. The collection
// is append-only; reads filter by user.
type Repository interface {
	Append(ctx context.Context, notification models.Notification) error
	ByUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) (bool, error)
	MarkAllRead(ctx context.Context, userID string) (int, error)
}

type repositoryImpl struct {
	coll repo.Collection[models.Notification]
}

// NewRepository returns a notifications repository bound to the provided store.
func NewRepository(store kv.Store) Repository {
	return &repositoryImpl{coll: repo.NewCollection[models.Notification](store, kv.KeyNotifications)}
}

func (r *repositoryImpl) Append(ctx context.Context, notification models.Notification) error {
	return r.coll.Append(ctx, notification)
}

func (r *repositoryImpl) ByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return r.coll.Filter(ctx, func(n models.Notification) bool { return n.UserID == userID })
}

func (r *repositoryImpl) MarkRead(ctx context.Context, id string) (bool, error) {
	return r.coll.Update(ctx,
		func(n models.Notification) bool { return n.ID == id },
		func(n models.Notification) models.Notification { n.Read = true; return n },
	)
}

func (r *repositoryImpl) MarkAllRead(ctx context.Context, userID string) (int, error) {
	items, err := r.coll.All(ctx)
	if err != nil {
		return 0, err
	}
	updated := 0
	for i, n := range items {
		if n.UserID == userID && !n.Read {
			items[i].Read = true
			updated++
		}
	}
	if updated == 0 {
		return 0, nil
	}
	return updated, r.coll.Replace(ctx, items)
}

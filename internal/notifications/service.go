package notifications

import (
	"context"
	"strings"
	"time"

	pkgerrors "github.com/fooddash-app/fooddash-backend/pkg/errors"
	"github.com/fooddash-app/fooddash-backend/pkg/ids"
	"github.com/fooddash-app/fooddash-backend/pkg/models"
)

// Service defines notification append/list/read operations.
type Service interface {
	Notify(ctx context.Context, userID, message string) error
	ListForUser(ctx context.Context, userID string, unreadOnly bool) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) (int, error)
}

type service struct {
	repo Repository
}

// NewService wires notification dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "notifications repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Notify(ctx context.Context, userID, message string) error {
	if userID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	if strings.TrimSpace(message) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "message required")
	}
	notification := models.Notification{
		ID:        ids.New("ntf"),
		UserID:    userID,
		Message:   message,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Append(ctx, notification); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "append notification")
	}
	return nil
}

func (s *service) ListForUser(ctx context.Context, userID string, unreadOnly bool) ([]models.Notification, error) {
	if userID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	items, err := s.repo.ByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list notifications")
	}
	if !unreadOnly {
		return items, nil
	}
	unread := make([]models.Notification, 0, len(items))
	for _, n := range items {
		if !n.Read {
			unread = append(unread, n)
		}
	}
	return unread, nil
}

func (s *service) MarkRead(ctx context.Context, userID, notificationID string) error {
	if notificationID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "notification id required")
	}
	owned, err := s.repo.ByUser(ctx, userID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load notifications")
	}
	found := false
	for _, n := range owned {
		if n.ID == notificationID {
			found = true
			break
		}
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "notification not found")
	}
	if _, err := s.repo.MarkRead(ctx, notificationID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mark notification read")
	}
	return nil
}

func (s *service) MarkAllRead(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	count, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mark notifications read")
	}
	return count, nil
}

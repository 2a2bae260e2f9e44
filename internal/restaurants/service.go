package restaurants

import (
	"context"

	"github.com/fooddash-app/fooddash-backend/pkg/enums"
	pkgerrors "github.com/fooddash-app/fooddash-backend/pkg/errors"
	"github.com/fooddash-app/fooddash-backend/pkg/models"
)

// Service defines restaurant read and update operations.
type Service interface {
	List(ctx context.Context, approvedOnly bool) ([]models.Restaurant, error)
	Get(ctx context.Context, id string) (*models.Restaurant, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Restaurant, error)
	Update(ctx context.Context, ownerID, id string, patch UpdatePatch) (*models.Restaurant, error)
}

type service struct {
	repo Repository
}

// NewService wires restaurant dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "restaurants repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, approvedOnly bool) ([]models.Restaurant, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list restaurants")
	}
	if !approvedOnly {
		return all, nil
	}
	approved := make([]models.Restaurant, 0, len(all))
	for _, rest := range all {
		if rest.Status == enums.RestaurantStatusApproved {
			approved = append(approved, rest)
		}
	}
	return approved, nil
}

func (s *service) Get(ctx context.Context, id string) (*models.Restaurant, error) {
	if id == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "restaurant id required")
	}
	rest, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load restaurant")
	}
	if rest == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "restaurant not found")
	}
	return rest, nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID string) ([]models.Restaurant, error) {
	if ownerID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "owner id required")
	}
	restaurants, err := s.repo.ByOwner(ctx, ownerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list owned restaurants")
	}
	return restaurants, nil
}

// Update applies a partial update to a restaurant the vendor owns. Status
// changes stay with the platform: vendors cannot move their own restaurant
// out of review.
func (s *service) Update(ctx context.Context, ownerID, id string, patch UpdatePatch) (*models.Restaurant, error) {
	rest, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if ownerID != "" && rest.OwnerID != ownerID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "restaurant belongs to another vendor")
	}
	if ownerID != "" {
		patch.Status = nil
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown restaurant status")
	}

	if _, err := s.repo.Update(ctx, id, patch); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update restaurant")
	}
	return s.Get(ctx, id)
}

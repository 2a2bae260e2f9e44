package products

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/fooddash-app/fooddash-backend/pkg/errors"
	"github.com/fooddash-app/fooddash-backend/pkg/ids"
	"github.com/fooddash-app/fooddash-backend/pkg/models"
)

// restaurantLoader resolves restaurant ownership for vendor menu mutations.
type restaurantLoader interface {
	ByID(ctx context.Context, id string) (*models.Restaurant, error)
}

// Service defines menu operations. Mutations are vendor actions scoped to
// restaurants the vendor owns.
type Service interface {
	ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, ownerID string, input CreateInput) (*models.Product, error)
	Update(ctx context.Context, ownerID, id string, patch UpdatePatch) (*models.Product, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// CreateInput captures a new menu item.
type CreateInput struct {
	RestaurantID string          `json:"restaurantId" validate:"required"`
	Name         string          `json:"name" validate:"required"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" validate:"required"`
	Category     string          `json:"category"`
	Image        string          `json:"image"`
	IsAvailable  bool            `json:"isAvailable"`
	Tags         []string        `json:"tags"`
}

type service struct {
	repo        Repository
	restaurants restaurantLoader
}

// NewService wires product dependencies.
func NewService(repo Repository, restaurants restaurantLoader) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "products repository required")
	}
	if restaurants == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "restaurant loader required")
	}
	return &service{repo: repo, restaurants: restaurants}, nil
}

func (s *service) ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Product, error) {
	if restaurantID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "restaurant id required")
	}
	items, err := s.repo.ByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list menu")
	}
	return items, nil
}

func (s *service) Get(ctx context.Context, id string) (*models.Product, error) {
	if id == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	product, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if product == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return product, nil
}

func (s *service) Create(ctx context.Context, ownerID string, input CreateInput) (*models.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product name required")
	}
	if input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}
	if err := s.ensureOwnership(ctx, ownerID, input.RestaurantID); err != nil {
		return nil, err
	}

	product := models.Product{
		ID:           ids.New("prod"),
		RestaurantID: input.RestaurantID,
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		Category:     input.Category,
		Image:        input.Image,
		IsAvailable:  input.IsAvailable,
		Tags:         input.Tags,
	}
	if err := s.repo.Add(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}
	return &product, nil
}

func (s *service) Update(ctx context.Context, ownerID, id string, patch UpdatePatch) (*models.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureOwnership(ctx, ownerID, product.RestaurantID); err != nil {
		return nil, err
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}

	if _, err := s.repo.Update(ctx, id, patch); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product")
	}
	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, ownerID, id string) error {
	product, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.ensureOwnership(ctx, ownerID, product.RestaurantID); err != nil {
		return err
	}
	if _, err := s.repo.Remove(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product")
	}
	return nil
}

func (s *service) ensureOwnership(ctx context.Context, ownerID, restaurantID string) error {
	restaurant, err := s.restaurants.ByID(ctx, restaurantID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load restaurant")
	}
	if restaurant == nil {
		return pkgerrors.New(pkgerrors.CodeNotFound, "restaurant not found")
	}
	if ownerID != "" && restaurant.OwnerID != ownerID {
		return pkgerrors.New(pkgerrors.CodeForbidden, "menu belongs to another vendor")
	}
	return nil
}

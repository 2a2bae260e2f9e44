package cart

import (
	"context"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/fooddash-app/fooddash-backend/pkg/errors"
	"github.com/fooddash-app/fooddash-backend/pkg/models"
)

// productLoader resolves the live product a cart line snapshots from.
type productLoader interface {
	ByID(ctx context.Context, id string) (*models.Product, error)
}

// Service defines cart operations for a single customer.
type Service interface {
	Items(ctx context.Context, customerID string) ([]models.CartItem, error)
	Add(ctx context.Context, customerID, productID string, quantity int) ([]models.CartItem, error)
	UpdateQuantity(ctx context.Context, customerID, productID string, quantity int) ([]models.CartItem, error)
	Clear(ctx context.Context, customerID string) error
	Total(ctx context.Context, customerID string) (decimal.Decimal, error)
}

type service struct {
	repo     Repository
	products productLoader
}

// NewService wires cart dependencies.
func NewService(repo Repository, products productLoader) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "cart repository required")
	}
	if products == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "product loader required")
	}
	return &service{repo: repo, products: products}, nil
}

func (s *service) Items(ctx context.Context, customerID string) ([]models.CartItem, error) {
	if customerID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id required")
	}
	items, err := s.repo.Items(ctx, customerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return items, nil
}

// Add merges onto an existing line for the same product instead of
// duplicating it: adding the same product twice yields one line with the
// summed quantity.
func (s *service) Add(ctx context.Context, customerID, productID string, quantity int) ([]models.CartItem, error) {
	if quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}
	items, err := s.Items(ctx, customerID)
	if err != nil {
		return nil, err
	}

	for i, line := range items {
		if line.ProductID == productID {
			items[i].Quantity += quantity
			if err := s.repo.Replace(ctx, customerID, items); err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
			}
			return items, nil
		}
	}

	product, err := s.products.ByID(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if product == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	items = append(items, models.CartItem{
		ProductID:    product.ID,
		RestaurantID: product.RestaurantID,
		Name:         product.Name,
		Price:        product.Price,
		Quantity:     quantity,
		Image:        product.Image,
	})
	if err := s.repo.Replace(ctx, customerID, items); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return items, nil
}

// UpdateQuantity sets a line's quantity. Anything at or below zero removes
// the line entirely; a zero-quantity entry is never kept.
func (s *service) UpdateQuantity(ctx context.Context, customerID, productID string, quantity int) ([]models.CartItem, error) {
	items, err := s.Items(ctx, customerID)
	if err != nil {
		return nil, err
	}

	next := make([]models.CartItem, 0, len(items))
	for _, line := range items {
		if line.ProductID != productID {
			next = append(next, line)
			continue
		}
		if quantity > 0 {
			line.Quantity = quantity
			next = append(next, line)
		}
	}

	if err := s.repo.Replace(ctx, customerID, next); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return next, nil
}

func (s *service) Clear(ctx context.Context, customerID string) error {
	if customerID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer id required")
	}
	if err := s.repo.Clear(ctx, customerID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}

// Total is an exact fold of price times quantity across all lines. Rounding
// is display-side business, never applied here.
func (s *service) Total(ctx context.Context, customerID string) (decimal.Decimal, error) {
	items, err := s.Items(ctx, customerID)
	if err != nil {
		return decimal.Zero, err
	}
	return Total(items), nil
}

// Total sums price times quantity over the given lines.
func Total(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, line := range items {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

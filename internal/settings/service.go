package settings

import (
	"context"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/fooddash-app/fooddash-backend/pkg/errors"
	"github.com/fooddash-app/fooddash-backend/pkg/models"
)

// Defaults are the platform settings seeded on first run and returned when
// no record has been written yet.
func Defaults() models.PlatformSettings {
	return models.PlatformSettings{
		CommissionRate: decimal.RequireFromString("0.15"),
		DeliveryFeeMin: decimal.RequireFromString("2.99"),
		DeliveryFeeMax: decimal.RequireFromString("7.99"),
		SupportEmail:   "support@fooddash.test",
	}
}

// UpdatePatch is a partial settings update. Nil fields keep their stored
// value; the record is merged, never replaced wholesale.
type UpdatePatch struct {
	CommissionRate *decimal.Decimal `json:"commissionRate"`
	DeliveryFeeMin *decimal.Decimal `json:"deliveryFeeMin"`
	DeliveryFeeMax *decimal.Decimal `json:"deliveryFeeMax"`
	SupportEmail   *string          `json:"supportEmail"`
}

func (p UpdatePatch) applyTo(settings models.PlatformSettings) models.PlatformSettings {
	if p.CommissionRate != nil {
		settings.CommissionRate = *p.CommissionRate
	}
	if p.DeliveryFeeMin != nil {
		settings.DeliveryFeeMin = *p.DeliveryFeeMin
	}
	if p.DeliveryFeeMax != nil {
		settings.DeliveryFeeMax = *p.DeliveryFeeMax
	}
	if p.SupportEmail != nil {
		settings.SupportEmail = *p.SupportEmail
	}
	return settings
}

// Service defines platform settings operations.
type Service interface {
	Get(ctx context.Context) (*models.PlatformSettings, error)
	Update(ctx context.Context, patch UpdatePatch) (*models.PlatformSettings, error)
}

type service struct {
	repo Repository
}

// NewService wires settings dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "settings repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Get(ctx context.Context) (*models.PlatformSettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load settings")
	}
	if settings == nil {
		defaults := Defaults()
		return &defaults, nil
	}
	return settings, nil
}

func (s *service) Update(ctx context.Context, patch UpdatePatch) (*models.PlatformSettings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	merged := patch.applyTo(*current)
	if err := s.repo.Set(ctx, merged); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store settings")
	}
	return &merged, nil
}

package vendors

import (
	"context"
	"fmt"
	"time"

	"github.com/fooddash-app/fooddash-backend/pkg/enums"
	pkgerrors "github.com/fooddash-app/fooddash-backend/pkg/errors"
	"github.com/fooddash-app/fooddash-backend/pkg/ids"
	"github.com/fooddash-app/fooddash-backend/pkg/models"
)

// restaurantCreator adds the storefront an approved application earns.
type restaurantCreator interface {
	Add(ctx context.Context, restaurant models.Restaurant) error
}

// notifier delivers in-app notifications, best effort.
type notifier interface {
	Notify(ctx context.Context, userID, message string) error
}

// SubmitInput carries a new vendor application.
type SubmitInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Cuisine string `json:"cuisine" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// Service defines vendor application review operations.
type Service interface {
	List(ctx context.Context, pendingOnly bool) ([]models.VendorApplication, error)
	Submit(ctx context.Context, input SubmitInput) (*models.VendorApplication, error)
	Approve(ctx context.Context, applicationID string) (*models.Restaurant, error)
	Reject(ctx context.Context, applicationID string) (*models.VendorApplication, error)
}

type service struct {
	repo          Repository
	restaurants   restaurantCreator
	notifications notifier
}

// NewService wires vendor application dependencies.
func NewService(repo Repository, restaurants restaurantCreator, notifications notifier) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "vendors repository required")
	}
	if restaurants == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "restaurant creator required")
	}
	if notifications == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "notifier required")
	}
	return &service{repo: repo, restaurants: restaurants, notifications: notifications}, nil
}

func (s *service) List(ctx context.Context, pendingOnly bool) ([]models.VendorApplication, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list vendor applications")
	}
	if !pendingOnly {
		return all, nil
	}
	pending := make([]models.VendorApplication, 0, len(all))
	for _, app := range all {
		if app.Status == enums.VendorApplicationStatusPending {
			pending = append(pending, app)
		}
	}
	return pending, nil
}

func (s *service) Submit(ctx context.Context, input SubmitInput) (*models.VendorApplication, error) {
	application := models.VendorApplication{
		ID:            ids.New("vnd"),
		Name:          input.Name,
		Email:         input.Email,
		Cuisine:       input.Cuisine,
		Phone:         input.Phone,
		Address:       input.Address,
		SubmittedDate: time.Now().UTC(),
		Status:        enums.VendorApplicationStatusPending,
	}
	if err := s.repo.Append(ctx, application); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "append vendor application")
	}
	return &application, nil
}

// Approve decides a pending application and creates the approved storefront.
// The new restaurant is owned by the application's id so the applicant can
// act as its vendor immediately.
func (s *service) Approve(ctx context.Context, applicationID string) (*models.Restaurant, error) {
	application, err := s.decidable(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	restaurant := models.Restaurant{
		ID:           ids.New("rest"),
		Name:         application.Name,
		Cuisine:      application.Cuisine,
		Address:      application.Address,
		Phone:        application.Phone,
		DeliveryTime: "30-45 min",
		PriceRange:   "$$",
		IsOpen:       true,
		OwnerID:      application.ID,
		Status:       enums.RestaurantStatusApproved,
	}
	if err := s.restaurants.Add(ctx, restaurant); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create restaurant")
	}

	if err := s.decide(ctx, applicationID, enums.VendorApplicationStatusApproved); err != nil {
		return nil, err
	}
	_ = s.notifications.Notify(ctx, application.ID,
		fmt.Sprintf("Your application for %s was approved", application.Name))
	return &restaurant, nil
}

func (s *service) Reject(ctx context.Context, applicationID string) (*models.VendorApplication, error) {
	application, err := s.decidable(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if err := s.decide(ctx, applicationID, enums.VendorApplicationStatusRejected); err != nil {
		return nil, err
	}
	_ = s.notifications.Notify(ctx, application.ID,
		fmt.Sprintf("Your application for %s was rejected", application.Name))
	application.Status = enums.VendorApplicationStatusRejected
	return application, nil
}

// decidable loads an application and checks it is still pending. Decisions
// are single shot: an already decided application yields STATE_CONFLICT.
func (s *service) decidable(ctx context.Context, applicationID string) (*models.VendorApplication, error) {
	if applicationID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "application id required")
	}
	application, err := s.repo.ByID(ctx, applicationID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load vendor application")
	}
	if application == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vendor application not found")
	}
	if application.Status.IsDecided() {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "vendor application already decided")
	}
	return application, nil
}

func (s *service) decide(ctx context.Context, applicationID string, status enums.VendorApplicationStatus) error {
	found, err := s.repo.Update(ctx, applicationID, func(app models.VendorApplication) models.VendorApplication {
		app.Status = status
		return app
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update vendor application")
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "vendor application not found")
	}
	return nil
}

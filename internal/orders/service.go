package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/fooddash-app/fooddash-backend/internal/cart"
	"github.com/fooddash-app/fooddash-backend/pkg/enums"
	pkgerrors "github.com/fooddash-app/fooddash-backend/pkg/errors"
	"github.com/fooddash-app/fooddash-backend/pkg/ids"
	"github.com/fooddash-app/fooddash-backend/pkg/logger"
	"github.com/fooddash-app/fooddash-backend/pkg/models"
	"github.com/fooddash-app/fooddash-backend/pkg/visibility"
)

// cartAccess is the slice of the cart service checkout needs.
type cartAccess interface {
	Items(ctx context.Context, customerID string) ([]models.CartItem, error)
	Clear(ctx context.Context, customerID string) error
}

// restaurantLoader resolves restaurants for snapshots and ownership checks.
type restaurantLoader interface {
	ByID(ctx context.Context, id string) (*models.Restaurant, error)
	ByOwner(ctx context.Context, ownerID string) ([]models.Restaurant, error)
}

// notifier delivers in-app notifications. Delivery is best effort; a failed
// notification never rolls back the order write it follows.
type notifier interface {
	Notify(ctx context.Context, userID, message string) error
}

// CheckoutInput carries everything needed to turn a cart into an order.
type CheckoutInput struct {
	CustomerID      string              `json:"-"`
	CustomerName    string              `json:"customerName" validate:"required"`
	CustomerPhone   string              `json:"customerPhone" validate:"required"`
	DeliveryAddress string              `json:"deliveryAddress" validate:"required"`
	PaymentMethod   enums.PaymentMethod `json:"paymentMethod" validate:"required"`
}

// Service defines order lifecycle operations for every role.
type Service interface {
	Checkout(ctx context.Context, input CheckoutInput) (*models.Order, error)
	Get(ctx context.Context, orderID string) (*models.Order, error)
	GetForCustomer(ctx context.Context, customerID, orderID string) (*models.Order, error)

	ListAll(ctx context.Context) ([]models.Order, error)
	ListForCustomer(ctx context.Context, customerID string) ([]models.Order, error)
	ListForVendor(ctx context.Context, vendorID string) ([]models.Order, error)
	AvailableForDriver(ctx context.Context) ([]models.Order, error)
	ActiveForDriver(ctx context.Context, driverID string) ([]models.Order, error)
	CompletedForDriver(ctx context.Context, driverID string) ([]models.Order, error)

	Accept(ctx context.Context, vendorID, orderID string) (*models.Order, error)
	Reject(ctx context.Context, vendorID, orderID string) (*models.Order, error)
	StartPreparing(ctx context.Context, vendorID, orderID string) (*models.Order, error)
	MarkReady(ctx context.Context, vendorID, orderID string) (*models.Order, error)

	Pickup(ctx context.Context, driverID, driverName, orderID string) (*models.Order, error)
	Deliver(ctx context.Context, driverID, orderID string) (*models.Order, error)
}

type service struct {
	repo          Repository
	carts         cartAccess
	restaurants   restaurantLoader
	notifications notifier
	logg          *logger.Logger
}

// NewService wires order dependencies. The logger is optional.
func NewService(repo Repository, carts cartAccess, restaurants restaurantLoader, notifications notifier, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "orders repository required")
	}
	if carts == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "cart access required")
	}
	if restaurants == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "restaurant loader required")
	}
	if notifications == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "notifier required")
	}
	return &service{
		repo:          repo,
		carts:         carts,
		restaurants:   restaurants,
		notifications: notifications,
		logg:          logg,
	}, nil
}

// Checkout snapshots the customer's cart into an immutable order, appends
// it, then clears the cart. The clear is a separate write: if it fails the
// order still stands and the customer may see a stale cart.
func (s *service) Checkout(ctx context.Context, input CheckoutInput) (*models.Order, error) {
	if input.CustomerID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "customer identity missing")
	}
	if input.DeliveryAddress == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "delivery address required")
	}
	if !input.PaymentMethod.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment method")
	}

	items, err := s.carts.Items(ctx, input.CustomerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}
	restaurantID := items[0].RestaurantID
	for _, item := range items {
		if item.RestaurantID != restaurantID {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart spans multiple restaurants")
		}
	}

	restaurant, err := s.restaurants.ByID(ctx, restaurantID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load restaurant")
	}
	if restaurant == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "restaurant not found")
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count orders")
	}

	now := time.Now().UTC()
	order := models.Order{
		ID:              ids.OrderID(count),
		CustomerID:      input.CustomerID,
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		RestaurantID:    restaurant.ID,
		RestaurantName:  restaurant.Name,
		Items:           snapshotItems(items),
		Status:          enums.OrderStatusPlaced,
		Total:           cart.Total(items),
		DeliveryAddress: input.DeliveryAddress,
		PaymentMethod:   input.PaymentMethod,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Append(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "append order")
	}

	// The order is durably written at this point; a failed cart clear must
	// not turn the checkout into an error. The customer sees a stale cart
	// until the next mutation.
	if err := s.carts.Clear(ctx, input.CustomerID); err != nil && s.logg != nil {
		s.logg.Error(s.logg.WithOrderID(ctx, order.ID), "clearing cart after checkout", err)
	}

	if restaurant.OwnerID != "" {
		_ = s.notifications.Notify(ctx, restaurant.OwnerID,
			fmt.Sprintf("New order %s from %s", order.ID, order.CustomerName))
	}
	return &order, nil
}

func (s *service) Get(ctx context.Context, orderID string) (*models.Order, error) {
	if orderID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	order, err := s.repo.ByID(ctx, orderID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	if order == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return order, nil
}

// GetForCustomer returns an order only to the customer who placed it.
// Other customers' orders read as absent rather than forbidden, so order ids
// cannot be probed for existence.
func (s *service) GetForCustomer(ctx context.Context, customerID, orderID string) (*models.Order, error) {
	if customerID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "customer identity missing")
	}
	order, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return order, nil
}

func (s *service) ListAll(ctx context.Context) ([]models.Order, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return all, nil
}

func (s *service) ListForCustomer(ctx context.Context, customerID string) ([]models.Order, error) {
	if customerID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id required")
	}
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return visibility.OrdersForCustomer(all, customerID), nil
}

func (s *service) ListForVendor(ctx context.Context, vendorID string) ([]models.Order, error) {
	if vendorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor id required")
	}
	owned, err := s.restaurants.ByOwner(ctx, vendorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load vendor restaurants")
	}
	restaurantIDs := make([]string, 0, len(owned))
	for _, r := range owned {
		restaurantIDs = append(restaurantIDs, r.ID)
	}
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return visibility.OrdersForVendor(all, restaurantIDs), nil
}

func (s *service) AvailableForDriver(ctx context.Context) ([]models.Order, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return visibility.AvailableOrdersForDriver(all), nil
}

func (s *service) ActiveForDriver(ctx context.Context, driverID string) ([]models.Order, error) {
	if driverID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "driver id required")
	}
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return visibility.ActiveOrdersForDriver(all, driverID), nil
}

func (s *service) CompletedForDriver(ctx context.Context, driverID string) ([]models.Order, error) {
	if driverID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "driver id required")
	}
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return visibility.CompletedOrdersForDriver(all, driverID), nil
}

func (s *service) Accept(ctx context.Context, vendorID, orderID string) (*models.Order, error) {
	return s.vendorTransition(ctx, vendorID, orderID, enums.OrderStatusAccepted,
		"Your order %s was accepted")
}

func (s *service) Reject(ctx context.Context, vendorID, orderID string) (*models.Order, error) {
	return s.vendorTransition(ctx, vendorID, orderID, enums.OrderStatusRejected,
		"Your order %s was rejected")
}

func (s *service) StartPreparing(ctx context.Context, vendorID, orderID string) (*models.Order, error) {
	return s.vendorTransition(ctx, vendorID, orderID, enums.OrderStatusPreparing,
		"Your order %s is being prepared")
}

func (s *service) MarkReady(ctx context.Context, vendorID, orderID string) (*models.Order, error) {
	return s.vendorTransition(ctx, vendorID, orderID, enums.OrderStatusReady,
		"Your order %s is ready for pickup")
}

// Pickup claims an order for a driver. It is the only transition that
// writes fields besides Status and UpdatedAt: DriverID and DriverName are
// assigned here, exactly once, while the order is still unclaimed.
func (s *service) Pickup(ctx context.Context, driverID, driverName, orderID string) (*models.Order, error) {
	if driverID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "driver identity missing")
	}
	order, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.DriverID != "" {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "order already claimed by a driver")
	}
	if !order.Status.CanTransitionTo(enums.OrderStatusPicked) {
		return nil, illegalTransition(order.Status, enums.OrderStatusPicked)
	}
	updated, err := s.applyTransition(ctx, orderID, func(o models.Order) models.Order {
		o.Status = enums.OrderStatusPicked
		o.DriverID = driverID
		o.DriverName = driverName
		return o
	})
	if err != nil {
		return nil, err
	}
	_ = s.notifications.Notify(ctx, updated.CustomerID,
		fmt.Sprintf("Your order %s was picked up by %s", updated.ID, driverName))
	return updated, nil
}

func (s *service) Deliver(ctx context.Context, driverID, orderID string) (*models.Order, error) {
	if driverID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "driver identity missing")
	}
	order, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.DriverID != driverID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "order is carried by another driver")
	}
	if !order.Status.CanTransitionTo(enums.OrderStatusDelivered) {
		return nil, illegalTransition(order.Status, enums.OrderStatusDelivered)
	}
	updated, err := s.applyTransition(ctx, orderID, func(o models.Order) models.Order {
		o.Status = enums.OrderStatusDelivered
		return o
	})
	if err != nil {
		return nil, err
	}
	_ = s.notifications.Notify(ctx, updated.CustomerID,
		fmt.Sprintf("Your order %s was delivered", updated.ID))
	return updated, nil
}

// vendorTransition moves an order to next after checking that the acting
// vendor owns the order's restaurant and that the move is legal.
func (s *service) vendorTransition(ctx context.Context, vendorID, orderID string, next enums.OrderStatus, customerMessage string) (*models.Order, error) {
	if vendorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "vendor identity missing")
	}
	order, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	restaurant, err := s.restaurants.ByID(ctx, order.RestaurantID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load restaurant")
	}
	if restaurant == nil || restaurant.OwnerID != vendorID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "order does not belong to vendor")
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, illegalTransition(order.Status, next)
	}
	updated, err := s.applyTransition(ctx, orderID, func(o models.Order) models.Order {
		o.Status = next
		return o
	})
	if err != nil {
		return nil, err
	}
	_ = s.notifications.Notify(ctx, updated.CustomerID, fmt.Sprintf(customerMessage, updated.ID))
	return updated, nil
}

func (s *service) applyTransition(ctx context.Context, orderID string, apply func(models.Order) models.Order) (*models.Order, error) {
	found, err := s.repo.Update(ctx, orderID, func(o models.Order) models.Order {
		o = apply(o)
		o.UpdatedAt = time.Now().UTC()
		return o
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order")
	}
	if !found {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return s.Get(ctx, orderID)
}

func illegalTransition(from, to enums.OrderStatus) error {
	return pkgerrors.New(pkgerrors.CodeStateConflict,
		fmt.Sprintf("cannot move order from %s to %s", from, to))
}

func snapshotItems(items []models.CartItem) []models.OrderItem {
	snapshot := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		snapshot = append(snapshot, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}
	return snapshot
}

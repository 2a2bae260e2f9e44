package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fooddash-app/fooddash-backend/api/middleware"
	"github.com/fooddash-app/fooddash-backend/api/responses"
	"github.com/fooddash-app/fooddash-backend/api/validators"
	"github.com/fooddash-app/fooddash-backend/internal/orders"
	pkgerrors "github.com/fooddash-app/fooddash-backend/pkg/errors"
	"github.com/fooddash-app/fooddash-backend/pkg/logger"
	"github.com/fooddash-app/fooddash-backend/pkg/models"
)

// Checkout turns the acting customer's cart into an order.
func Checkout(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middleware.ActorFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "actor identity missing"))
			return
		}
		var input orders.CheckoutInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input.CustomerID = actor.ID
		order, err := svc.Checkout(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

func CustomerOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return actorList(logg, func(r *http.Request, actorID string) ([]models.Order, error) {
		return svc.ListForCustomer(r.Context(), actorID)
	})
}

// OrderDetail is customer-facing and only serves the acting customer's own
// orders.
func OrderDetail(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middleware.ActorFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "actor identity missing"))
			return
		}
		order, err := svc.GetForCustomer(r.Context(), actor.ID, chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

func VendorOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return actorList(logg, func(r *http.Request, actorID string) ([]models.Order, error) {
		return svc.ListForVendor(r.Context(), actorID)
	})
}

func VendorAcceptOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return vendorAction(logg, svc.Accept)
}

func VendorRejectOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return vendorAction(logg, svc.Reject)
}

func VendorStartPreparing(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return vendorAction(logg, svc.StartPreparing)
}

func VendorMarkReady(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return vendorAction(logg, svc.MarkReady)
}

// DriverAvailableOrders returns the unclaimed pickup pool.
func DriverAvailableOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pool, err := svc.AvailableForDriver(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, pool)
	}
}

func DriverActiveOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return actorList(logg, func(r *http.Request, actorID string) ([]models.Order, error) {
		return svc.ActiveForDriver(r.Context(), actorID)
	})
}

func DriverCompletedOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return actorList(logg, func(r *http.Request, actorID string) ([]models.Order, error) {
		return svc.CompletedForDriver(r.Context(), actorID)
	})
}

func DriverPickupOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middleware.ActorFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "actor identity missing"))
			return
		}
		order, err := svc.Pickup(r.Context(), actor.ID, actor.Name, chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

func DriverDeliverOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middleware.ActorFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "actor identity missing"))
			return
		}
		order, err := svc.Deliver(r.Context(), actor.ID, chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

func AdminOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := svc.ListAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, all)
	}
}

func vendorAction(logg *logger.Logger, action func(ctx context.Context, vendorID, orderID string) (*models.Order, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middleware.ActorFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "actor identity missing"))
			return
		}
		order, err := action(r.Context(), actor.ID, chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

func actorList(logg *logger.Logger, list func(*http.Request, string) ([]models.Order, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middleware.ActorFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "actor identity missing"))
			return
		}
		listing, err := list(r, actor.ID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, listing)
	}
}

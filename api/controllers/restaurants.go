package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fooddash-app/fooddash-backend/api/middleware"
	"github.com/fooddash-app/fooddash-backend/api/responses"
	"github.com/fooddash-app/fooddash-backend/api/validators"
	"github.com/fooddash-app/fooddash-backend/internal/restaurants"
	"github.com/fooddash-app/fooddash-backend/pkg/enums"
	pkgerrors "github.com/fooddash-app/fooddash-backend/pkg/errors"
	"github.com/fooddash-app/fooddash-backend/pkg/logger"
)

// ListRestaurants returns the public storefront listing. Only approved
// restaurants show up unless approvedOnly=false is requested, which is
// reserved for admin dashboards.
func ListRestaurants(svc restaurants.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		approvedOnly, err := validators.ParseQueryBool(r, "approvedOnly", true)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !approvedOnly {
			actor, ok := middleware.ActorFromContext(r.Context())
			if !ok || actor.Role != enums.RoleAdmin {
				approvedOnly = true
			}
		}
		listing, err := svc.List(r.Context(), approvedOnly)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, listing)
	}
}

func RestaurantDetail(svc restaurants.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		restaurant, err := svc.Get(r.Context(), chi.URLParam(r, "restaurantId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, restaurant)
	}
}

// VendorMyRestaurants lists the storefronts owned by the acting vendor.
func VendorMyRestaurants(svc restaurants.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middleware.ActorFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "actor identity missing"))
			return
		}
		owned, err := svc.ListByOwner(r.Context(), actor.ID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, owned)
	}
}

func VendorUpdateRestaurant(svc restaurants.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middleware.ActorFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "actor identity missing"))
			return
		}
		var patch restaurants.UpdatePatch
		if err := validators.DecodeJSONBody(r, &patch); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		updated, err := svc.Update(r.Context(), actor.ID, chi.URLParam(r, "restaurantId"), patch)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/fooddash-app/fooddash-backend/api/responses"
	"github.com/fooddash-app/fooddash-backend/api/validators"
	"github.com/fooddash-app/fooddash-backend/internal/seed"
	"github.com/fooddash-app/fooddash-backend/internal/settings"
	"github.com/fooddash-app/fooddash-backend/internal/vendors"
	pkgerrors "github.com/fooddash-app/fooddash-backend/pkg/errors"
	"github.com/fooddash-app/fooddash-backend/pkg/logger"
)

// VendorApply accepts a new vendor application from the public site.
func VendorApply(svc vendors.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input vendors.SubmitInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		application, err := svc.Submit(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, application)
	}
}

func AdminPendingVendors(svc vendors.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pendingOnly, err := validators.ParseQueryBool(r, "pendingOnly", true)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		applications, err := svc.List(r.Context(), pendingOnly)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, applications)
	}
}

func AdminApproveVendor(svc vendors.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		restaurant, err := svc.Approve(r.Context(), chi.URLParam(r, "applicationId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, restaurant)
	}
}

func AdminRejectVendor(svc vendors.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		application, err := svc.Reject(r.Context(), chi.URLParam(r, "applicationId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, application)
	}
}

func AdminSettings(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := svc.Get(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, current)
	}
}

// AdminUpdateSettings merges a partial patch. The commission rate is a
// fraction, so it must stay within [0, 1].
func AdminUpdateSettings(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch settings.UpdatePatch
		if err := validators.DecodeJSONBody(r, &patch); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if patch.CommissionRate != nil {
			rate := *patch.CommissionRate
			if rate.LessThan(decimal.Zero) || rate.GreaterThan(decimal.NewFromInt(1)) {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "commission rate must be between 0 and 1"))
				return
			}
		}
		updated, err := svc.Update(r.Context(), patch)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

// AdminReset wipes the store and seeds the demo dataset again.
func AdminReset(seeder *seed.Seeder, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := seeder.Reset(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "reset"})
	}
}

package controllers

import (
	"net/http"

	"github.com/fooddash-app/fooddash-backend/api/middleware"
	"github.com/fooddash-app/fooddash-backend/api/responses"
	"github.com/fooddash-app/fooddash-backend/api/validators"
	"github.com/fooddash-app/fooddash-backend/internal/cart"
	pkgerrors "github.com/fooddash-app/fooddash-backend/pkg/errors"
	"github.com/fooddash-app/fooddash-backend/pkg/logger"
	"github.com/fooddash-app/fooddash-backend/pkg/models"
	"github.com/fooddash-app/fooddash-backend/pkg/types"
)

type cartMutation struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required"`
}

type cartView struct {
	Items []models.CartItem `json:"items"`
	Total string            `json:"total"`
}

func cartResponse(items []models.CartItem) cartView {
	return cartView{Items: items, Total: cart.Total(items).StringFixed(2)}
}

func CartFetch(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middleware.ActorFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "actor identity missing"))
			return
		}
		items, err := svc.Items(r.Context(), actor.ID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cartResponse(items))
	}
}

func CartAdd(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return cartMutate(logg, func(r *http.Request, actor types.Actor, body cartMutation) ([]models.CartItem, error) {
		return svc.Add(r.Context(), actor.ID, body.ProductID, body.Quantity)
	})
}

// CartUpdateQuantity replaces a line's quantity; zero or below removes the
// line entirely.
func CartUpdateQuantity(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middleware.ActorFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "actor identity missing"))
			return
		}
		var body struct {
			ProductID string `json:"productId" validate:"required"`
			Quantity  int    `json:"quantity"`
		}
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		items, err := svc.UpdateQuantity(r.Context(), actor.ID, body.ProductID, body.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cartResponse(items))
	}
}

func CartClear(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middleware.ActorFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "actor identity missing"))
			return
		}
		if err := svc.Clear(r.Context(), actor.ID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cartResponse(nil))
	}
}

func cartMutate(logg *logger.Logger, mutate func(*http.Request, types.Actor, cartMutation) ([]models.CartItem, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middleware.ActorFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "actor identity missing"))
			return
		}
		var body cartMutation
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		items, err := mutate(r, actor, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cartResponse(items))
	}
}

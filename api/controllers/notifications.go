package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fooddash-app/fooddash-backend/api/middleware"
	"github.com/fooddash-app/fooddash-backend/api/responses"
	"github.com/fooddash-app/fooddash-backend/api/validators"
	"github.com/fooddash-app/fooddash-backend/internal/notifications"
	pkgerrors "github.com/fooddash-app/fooddash-backend/pkg/errors"
	"github.com/fooddash-app/fooddash-backend/pkg/logger"
)

func ListNotifications(svc notifications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middleware.ActorFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "actor identity missing"))
			return
		}
		unreadOnly, err := validators.ParseQueryBool(r, "unreadOnly", false)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		listing, err := svc.ListForUser(r.Context(), actor.ID, unreadOnly)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, listing)
	}
}

func MarkNotificationRead(svc notifications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middleware.ActorFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "actor identity missing"))
			return
		}
		if err := svc.MarkRead(r.Context(), actor.ID, chi.URLParam(r, "notificationId")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "read"})
	}
}

func MarkAllNotificationsRead(svc notifications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middleware.ActorFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "actor identity missing"))
			return
		}
		count, err := svc.MarkAllRead(r.Context(), actor.ID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]int{"marked": count})
	}
}

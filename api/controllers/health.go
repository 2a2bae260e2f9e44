package controllers

import (
	"net/http"

	"github.com/fooddash-app/fooddash-backend/api/responses"
	"github.com/fooddash-app/fooddash-backend/pkg/config"
	pkgerrors "github.com/fooddash-app/fooddash-backend/pkg/errors"
	"github.com/fooddash-app/fooddash-backend/pkg/kv"
	"github.com/fooddash-app/fooddash-backend/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-FoodDash-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, store kv.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-FoodDash-Env", cfg.App.Env)
		var sentinel bool
		if _, err := store.Get(r.Context(), kv.KeyInitialized, &sentinel); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store not reachable"))
			return
		}
		responses.WriteSuccess(w, map[string]any{"status": "ready", "seeded": sentinel})
	}
}

package middleware

import (
	"context"
	"net/http"

	"github.com/fooddash-app/fooddash-backend/pkg/enums"
	"github.com/fooddash-app/fooddash-backend/pkg/logger"
	"github.com/fooddash-app/fooddash-backend/pkg/types"
)

// The acting user arrives as headers set by the authentication collaborator
// in front of this API. Credentials never reach this service.
const (
	actorIDHeader   = "X-Actor-Id"
	actorNameHeader = "X-Actor-Name"
	actorRoleHeader = "X-Actor-Role"
)

type actorCtxKey struct{}

// ActorContext maps the actor headers into the request context. Requests
// without actor headers continue as anonymous; role guards reject them later
// where a role is required.
func ActorContext(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			id := r.Header.Get(actorIDHeader)
			if id == "" {
				next.ServeHTTP(w, r)
				return
			}

			role, err := enums.ParseRole(r.Header.Get(actorRoleHeader))
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			actor := types.Actor{
				ID:   id,
				Name: r.Header.Get(actorNameHeader),
				Role: role,
			}
			ctx = context.WithValue(ctx, actorCtxKey{}, actor)
			if logg != nil {
				ctx = logg.WithUserID(ctx, actor.ID)
				ctx = logg.WithActorRole(ctx, actor.Role.String())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ActorFromContext returns the acting user, if any.
func ActorFromContext(ctx context.Context) (types.Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey{}).(types.Actor)
	return actor, ok
}

package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

var defaultCORSOrigins = []string{
	"http://localhost:3000", // local dashboard dev server
	"http://localhost:5173",
}

// CORS returns middleware applying the dashboard origin policy. Extra
// origins come from configuration so deployments can add their frontends.
func CORS(extraOrigins []string) func(http.Handler) http.Handler {
	origins := append([]string{}, defaultCORSOrigins...)
	origins = append(origins, extraOrigins...)
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Actor-Id", "X-Actor-Name", "X-Actor-Role", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}

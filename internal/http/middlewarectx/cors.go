package middlewarectx

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// CORS разрешает GET-запросы с перечисленных источников.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodHead, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Accept", "Content-Type", "X-Request-Id"}),
	)
}

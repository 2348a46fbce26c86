package middlewares

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

// Cors allows browser clients from the given origins. A "*" entry allows any
// origin.
func Cors(origins []string) func(http.Handler) http.Handler {
	allowed := make([]string, 0, len(origins))
	for _, o := range origins {
		allowed = append(allowed, strings.TrimRight(o, "/"))
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: allowed,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization", "X-Request-Id"},
		MaxAge:         600,
	})
}

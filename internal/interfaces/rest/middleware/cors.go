package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS opens the client-facing API to the configured gallery front ends.
// An empty origin list allows any origin.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	})
	return c.Handler
}

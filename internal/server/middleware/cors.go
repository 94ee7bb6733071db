package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/mamadbah2/wms/internal/config"
)

// NewCORS wraps the engine for the desktop client's origins. Credentials are
// not allowed; auth travels in the Authorization header.
func NewCORS(cfg config.ServerConfig) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CorsAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	})

	return c.Handler
}

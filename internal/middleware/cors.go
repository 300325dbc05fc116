package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORSConfig holds CORS configuration options.
type CORSConfig struct {
	// AllowedOrigins lists origins allowed to make cross-origin requests.
	// "*" allows any origin. Patterns like "https://*.example.com" are supported.
	AllowedOrigins []string

	// MaxAge is the value for Access-Control-Max-Age in seconds.
	MaxAge int

	// Debug enables rs/cors request tracing on stderr.
	Debug bool
}

// DefaultCORSConfig allows any origin, matching the public API.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: []string{"*"},
		MaxAge:         86400, // 24 hours
	}
}

// CORS returns a middleware that handles Cross-Origin Resource Sharing,
// including preflight OPTIONS requests.
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         cfg.MaxAge,
		Debug:          cfg.Debug,
	})
	return c.Handler
}

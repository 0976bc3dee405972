package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows the configured origins to call the submit endpoint from the mini-app page.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Telegram-Init-Data", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Activation-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}

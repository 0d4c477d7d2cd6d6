package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

var defaultCORSOrigins = []string{
	"http://localhost:5173",            // local storefront dev server
	"http://localhost:3000",            // local preview build
	"https://calabar.store",            // production storefront
	"https://calabar-store.vercel.app", // Vercel deployment URL
}

// CORS returns middleware that applies the storefront's allowed origin policy.
func CORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   defaultCORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Calabar-Session", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Calabar-Session"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}

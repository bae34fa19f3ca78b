package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/panchanga-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET  /health                           database health
//	POST /panchang                         compute (legacy path)
//	GET  /api/v1/panchanga                 compute from query parameters
//	POST /api/v1/panchanga                 compute from JSON body
//	GET  /api/v1/panchanga/history         recorded calculations (API key)
//	GET  /api/v1/panchanga/history/{id}    one recorded calculation (API key)
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, r, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
	})

	// ==========================================================================
	// Public routes
	// ==========================================================================
	r.Get("/health", handlers.HealthCheck)
	r.Post("/panchang", handlers.CalculatePanchanga)

	r.Route("/api/v1/panchanga", func(r chi.Router) {
		r.Get("/", handlers.GetPanchanga)
		r.Post("/", handlers.CalculatePanchanga)

		// ======================================================================
		// History routes (API key)
		// ======================================================================
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(cfg, logger))
			r.Get("/history", handlers.ListHistory)
			r.Get("/history/{id}", handlers.GetHistory)
		})
	})

	return r
}

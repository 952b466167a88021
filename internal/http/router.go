package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/pocket/internal/http/export"
	"github.com/MrJamesThe3rd/pocket/internal/http/health"
	"github.com/MrJamesThe3rd/pocket/internal/http/transaction"
)

type Options struct {
	AllowedOrigins []string
}

func New(
	transactions *transaction.Handler,
	exports *export.Handler,
	healthCheck *health.Handler,
	opts Options,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Credentials must be allowed for the session cookie to travel cross-origin.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Route("/transactions", func(r chi.Router) {
		exports.Routes(r)
		transactions.Routes(r)
	})
	router.Route("/healthz", healthCheck.Routes)

	return router
}

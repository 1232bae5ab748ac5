package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/returnlens/Annualized-Return-Backend/internal/api/handlers"
	custommiddleware "github.com/returnlens/Annualized-Return-Backend/internal/api/middleware"
	"github.com/returnlens/Annualized-Return-Backend/internal/config"
	"github.com/returnlens/Annualized-Return-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	calculationService *service.CalculationService,
	chartService *service.ChartService,
	sessionService *service.SessionService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		// Stateless calculation
		r.Route("/calculation", func(r chi.Router) {
			calculationHandler := handlers.NewCalculationHandler(calculationService, chartService)
			r.Get("/", calculationHandler.Calculate)
			r.Post("/", calculationHandler.CalculateBody)
			r.Get("/chart", calculationHandler.Chart)
		})

		// Interactive sessions
		r.Route("/session", func(r chi.Router) {
			sessionHandler := handlers.NewSessionHandler(sessionService, calculationService, chartService)
			r.Post("/", sessionHandler.Create)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", sessionHandler.Get)
				r.Put("/inputs", sessionHandler.UpdateInputs)
				r.Delete("/", sessionHandler.Delete)
			})
		})
	})

	return r
}

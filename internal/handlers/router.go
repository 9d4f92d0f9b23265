package handlers

import (
	"log/slog"
	"net/http"

	"users-backend/internal/metrics"
	"users-backend/internal/middleware"
	"users-backend/internal/services"
	"users-backend/internal/token"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// NewRouter wires the versioned user API, the auth gate for the protected
// routes and the /metrics endpoint.
func NewRouter(service *services.UserService, tokens *token.Manager, logger *slog.Logger) http.Handler {
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	authMiddleware := middleware.NewAuthMiddleware(tokens, logger)
	h := NewUserHandler(service)

	r := chi.NewRouter()
	r.Use(middleware.Logging(logger))
	r.Use(collector.Middleware)

	r.Route("/api/v1/users", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)
			r.Get("/view/all", h.ListUsers)
			r.Get("/view/{id}", h.GetUser)
			r.Delete("/delete/{id}", h.DeleteUser)
			r.Put("/update/{id}", h.UpdateUser)
		})
	})

	r.Handle("/metrics", metrics.Handler(registry))

	return r
}

// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/task-saga-service/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// metrics serves GET /metrics when non-nil. Middleware is applied globally
// in the order given, first outermost.
func NewRouter(
	taskHandler *handlers.TaskHandler,
	healthHandler *handlers.HealthHandler,
	metrics http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewares...)

	// Operational endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/tasks", taskHandler.ListTasks)
		r.Post("/tasks", taskHandler.CreateTask)
		r.Get("/tasks/{id}", taskHandler.GetTask)
		r.Put("/tasks/{id}", taskHandler.UpdateTask)
		r.Delete("/tasks/{id}", taskHandler.DeleteTask)
	})

	return r
}

// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/demo-bd/internal/adapters/http/attribution"
	"github.com/jsamuelsen11/demo-bd/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Every route is recorded
// in reg so that access records can name the handler that served them.
func NewRouter(
	healthHandler *handlers.HealthHandler,
	computeHandler *handlers.ComputeHandler,
	reg *attribution.Registry,
	middlewares ...func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Liveness and readiness.
	r.Method(http.MethodGet, "/health/live", attribution.Method(healthHandler, (*handlers.HealthHandler).Liveness))
	r.Method(http.MethodGet, "/health/ready", attribution.Method(healthHandler, (*handlers.HealthHandler).Readiness))

	r.Route("/v1/health", func(r chi.Router) {
		r.Method(http.MethodGet, "/status", attribution.Method(healthHandler, (*handlers.HealthHandler).Status))
		r.Method(http.MethodGet, "/info", attribution.Method(healthHandler, (*handlers.HealthHandler).Info))
		r.Method(http.MethodGet, "/custom_error_test", attribution.Method(healthHandler, (*handlers.HealthHandler).CustomErrorTest))
	})

	r.Method(http.MethodGet, "/hello/hello", attribution.Endpoint(handlers.Hello))
	r.Method(http.MethodGet, "/compute", attribution.Method(computeHandler, (*handlers.ComputeHandler).Compute))

	if err := reg.Build(r); err != nil {
		return nil, fmt.Errorf("building handler registry: %w", err)
	}
	return r, nil
}

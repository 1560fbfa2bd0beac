package ports

import (
	"context"

	"github.com/jsamuelsen11/demo-bd/internal/domain"
)

// ComputeService defines the service port for the compute endpoint.
// Implemented by the application layer; called by inbound adapters (handlers).
type ComputeService interface {
	// Fibonacci returns the n-th Fibonacci number.
	// Returns domain.ErrValidation if n is outside the configured range.
	Fibonacci(ctx context.Context, n int) (uint64, error)
}

// InfoService defines the service port for the status and info endpoints.
type InfoService interface {
	// Info describes the running service instance.
	Info(ctx context.Context) domain.ServiceInfo

	// StatusMessage returns the greeting of the status endpoint.
	StatusMessage(ctx context.Context) string
}

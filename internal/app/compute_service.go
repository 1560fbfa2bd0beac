package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/demo-bd/internal/app/reqctx"
	"github.com/jsamuelsen11/demo-bd/internal/domain"
	"github.com/jsamuelsen11/demo-bd/internal/ports"
)

// Compile-time check that ComputeService implements ports.ComputeService.
var _ ports.ComputeService = (*ComputeService)(nil)

// ComputeService implements ports.ComputeService. It bounds n by the
// configured maximum and delegates to the domain computation.
type ComputeService struct {
	maxN   int
	logger *slog.Logger
}

// NewComputeService creates a ComputeService accepting n up to maxN, capped
// at domain.MaxFibonacciN. A nil logger discards output.
func NewComputeService(maxN int, logger *slog.Logger) *ComputeService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if maxN <= 0 || maxN > domain.MaxFibonacciN {
		maxN = domain.MaxFibonacciN
	}
	return &ComputeService{maxN: maxN, logger: logger}
}

// MaxN returns the largest accepted n.
func (s *ComputeService) MaxN() int {
	return s.maxN
}

// Fibonacci returns the n-th Fibonacci number.
func (s *ComputeService) Fibonacci(ctx context.Context, n int) (uint64, error) {
	s.logger.InfoContext(ctx, "computing fibonacci",
		slog.Int("n", n),
		slog.String("request_id", reqctx.RequestID(ctx)),
	)

	if n < 0 || n > s.maxN {
		return 0, &domain.ValidationError{Fields: map[string]string{
			"n": fmt.Sprintf("must be between 0 and %d", s.maxN),
		}}
	}

	result, err := domain.Fibonacci(n)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to compute fibonacci",
			slog.String("operation", "Fibonacci"),
			slog.Int("n", n),
			slog.Any("error", err),
		)
		return 0, err
	}
	return result, nil
}

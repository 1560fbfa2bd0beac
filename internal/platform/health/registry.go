// Package health provides a thread-safe health check registry for tracking
// the health of the service's components. The registry is used by the
// readiness endpoint to determine whether the service can accept traffic.
package health

import (
	"context"
	"sync"

	"github.com/jsamuelsen11/demo-bd/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultMaxParallel bounds how many checks run at once.
const DefaultMaxParallel = 4

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Components that implement [ports.HealthChecker] are registered at startup
// and checked on each readiness probe.
type Registry struct {
	mu          sync.RWMutex
	checkers    []ports.HealthChecker
	maxParallel int
}

// New creates an empty health check registry.
func New() *Registry {
	return &Registry{maxParallel: DefaultMaxParallel}
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll executes all registered health checks concurrently, at most
// DefaultMaxParallel at a time, and returns results keyed by checker name.
// Nil values indicate healthy components. A check still waiting for a slot
// when ctx ends reports ctx.Err() without running. When two checkers share a
// name, the one registered last wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	errs := make([]error, len(checkers))
	sem := make(chan struct{}, max(r.maxParallel, 1))
	var wg sync.WaitGroup

	for i, c := range checkers {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				errs[i] = ctx.Err()
				return
			}
			errs[i] = c.HealthCheck(ctx)
		})
	}
	wg.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}

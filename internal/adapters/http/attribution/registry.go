package attribution

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Registry maps routes to the handlers registered for them. Handlers are
// described once, when they are registered.
type Registry struct {
	mu   sync.RWMutex
	refs map[Route]HandlerReference
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{refs: make(map[Route]HandlerReference)}
}

// Register describes h and stores it under method and pattern.
func (g *Registry) Register(method, pattern string, h any) HandlerReference {
	ref := Describe(h)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.refs[Route{Method: method, Pattern: pattern}] = ref
	return ref
}

// Build registers every route of routes.
func (g *Registry) Build(routes chi.Routes) error {
	err := chi.Walk(routes, func(method, route string, handler http.Handler, _ ...func(http.Handler) http.Handler) error {
		g.Register(method, route, handler)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking routes: %w", err)
	}
	return nil
}

// Lookup returns the reference registered for method and pattern.
func (g *Registry) Lookup(method, pattern string) (HandlerReference, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ref, ok := g.refs[Route{Method: method, Pattern: pattern}]
	return ref, ok
}

// Len returns the number of registered routes.
func (g *Registry) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.refs)
}

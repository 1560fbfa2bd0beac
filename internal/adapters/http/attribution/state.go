package attribution

import (
	"context"
	"net/http"
	"sync"
)

// Route identifies a matched route by method and chi pattern.
type Route struct {
	Method  string
	Pattern string
}

// State is the per-request attribution slot set. The routing layer fills it
// during dispatch and the access log reads it afterwards, possibly from
// another goroutine when the handler ran under a timeout.
type State struct {
	mu       sync.Mutex
	route    *Route
	endpoint http.Handler
}

type stateKey struct{}

// WithState returns ctx carrying a State. An existing State is reused so that
// nested middleware share one slot set.
func WithState(ctx context.Context) (context.Context, *State) {
	if s := StateFrom(ctx); s != nil {
		return ctx, s
	}
	s := &State{}
	return context.WithValue(ctx, stateKey{}, s), s
}

// StateFrom returns the State carried by ctx, or nil.
func StateFrom(ctx context.Context) *State {
	s, _ := ctx.Value(stateKey{}).(*State)
	return s
}

// SetEndpoint records h in the endpoint slot of the request's State. It
// reports false when ctx carries no State.
func SetEndpoint(ctx context.Context, h http.Handler) bool {
	s := StateFrom(ctx)
	if s == nil {
		return false
	}
	s.SetEndpoint(h)
	return true
}

// SetRoute records the matched route.
func (s *State) SetRoute(method, pattern string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.route = &Route{Method: method, Pattern: pattern}
}

// SetEndpoint records the handler that served the request.
func (s *State) SetEndpoint(h http.Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endpoint = h
}

// Route returns the matched route, if any.
func (s *State) Route() (Route, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.route == nil {
		return Route{}, false
	}
	return *s.route, true
}

// Endpoint returns the recorded handler, or nil.
func (s *State) Endpoint() http.Handler {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.endpoint
}

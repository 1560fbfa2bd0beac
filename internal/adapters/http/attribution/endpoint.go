package attribution

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// endpoint marks a routed handler. See Endpoint. target is what Describe
// reports; it differs from h for Method endpoints.
type endpoint struct {
	h      http.HandlerFunc
	target any
}

// Endpoint wraps a route handler so that dispatching it records the matched
// chi route and the handler in the request's State:
//
//	r.Get("/hello/hello", attribution.Endpoint(hello.Hello))
//
// A method value such as h.Status compiles to a wrapper without a source
// position and is described with an inferred path; use Method to keep the
// method's own file and line.
func Endpoint(h http.HandlerFunc) http.Handler {
	return &endpoint{h: h, target: h}
}

// Method is Endpoint for a method bound to recv, given as a method
// expression. It is described by the method itself:
//
//	r.Method(http.MethodGet, "/status", attribution.Method(h, (*HealthHandler).Status))
func Method[T any](recv T, m func(T, http.ResponseWriter, *http.Request)) http.Handler {
	return &endpoint{
		h: func(w http.ResponseWriter, r *http.Request) {
			m(recv, w, r)
		},
		target: m,
	}
}

func (e *endpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s := StateFrom(r.Context()); s != nil {
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			s.SetRoute(r.Method, rctx.RoutePattern())
		}
		s.SetEndpoint(e)
	}
	e.h(w, r)
}

// Unwrap returns the wrapped handler.
func (e *endpoint) Unwrap() http.Handler {
	return e.h
}

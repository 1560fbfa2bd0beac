package attribution

import "net/http"

// Resolver attributes a completed request to its handler.
type Resolver struct {
	Registry *Registry
}

// NewResolver creates a Resolver backed by reg. A nil reg resolves through
// the endpoint slot only.
func NewResolver(reg *Registry) *Resolver {
	return &Resolver{Registry: reg}
}

// Resolve returns the handler that served r. It must be called after the
// downstream pipeline returned. The matched route is looked up in the
// Registry first; otherwise the recorded endpoint is described. Requests
// that matched nothing, such as 404s, resolve to Unknown. Resolve never
// panics.
func (rs *Resolver) Resolve(r *http.Request) (ref HandlerReference) {
	defer func() {
		if recover() != nil {
			ref = Unknown()
		}
	}()

	s := StateFrom(r.Context())
	if s == nil {
		return Unknown()
	}

	if route, ok := s.Route(); ok && rs.Registry != nil {
		if ref, ok := rs.Registry.Lookup(route.Method, route.Pattern); ok {
			return ref
		}
	}
	if h := s.Endpoint(); h != nil {
		return Describe(h)
	}
	return Unknown()
}

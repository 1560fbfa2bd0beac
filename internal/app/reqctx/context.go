// Package reqctx provides the per-request key/value store that carries
// request-scoped metadata such as the request and correlation ids.
//
// The RequestContext middleware creates one store per HTTP request; anything
// running on behalf of that request can read and write it through the
// request's context.Context:
//
//	ctx = reqctx.WithRequestContext(ctx, reqctx.New())
//	reqctx.Set(ctx, reqctx.KeyRequestID, id)
//	id := reqctx.Get(ctx, reqctx.KeyRequestID, "")
//
// Outside a request, Exists reports false and Get returns the default.
package reqctx

import (
	"context"
	"maps"
	"slices"
	"sync"
)

// Keys of the ids stored by the request id and correlation id middleware.
const (
	KeyRequestID     = "X-Request-ID"
	KeyCorrelationID = "X-Correlation-ID"
)

// RequestContext is the store for one request. It is safe for concurrent use
// since a request may fan work out to several goroutines, e.g. the timeout
// middleware runs the handler on its own goroutine.
type RequestContext struct {
	mu     sync.RWMutex
	values map[string]any
}

// New creates an empty RequestContext.
func New() *RequestContext {
	return &RequestContext{values: make(map[string]any)}
}

// Get returns the value stored under key, or def when absent.
func (rc *RequestContext) Get(key string, def any) any {
	if v, ok := rc.Lookup(key); ok {
		return v
	}
	return def
}

// Lookup returns the value stored under key and whether it is present.
func (rc *RequestContext) Lookup(key string) (any, bool) {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	v, ok := rc.values[key]
	return v, ok
}

// Set stores v under key.
func (rc *RequestContext) Set(key string, v any) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.values[key] = v
}

// Keys returns the stored keys in sorted order.
func (rc *RequestContext) Keys() []string {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return slices.Sorted(maps.Keys(rc.values))
}

// contextKey is the unexported key type for storing a RequestContext.
type contextKey struct{}

// WithRequestContext returns a new context carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, rc)
}

// FromContext returns the RequestContext carried by ctx, if any.
func FromContext(ctx context.Context) (*RequestContext, bool) {
	if ctx == nil {
		return nil, false
	}
	rc, ok := ctx.Value(contextKey{}).(*RequestContext)
	return rc, ok && rc != nil
}

// Exists reports whether ctx is inside a request scope.
func Exists(ctx context.Context) bool {
	_, ok := FromContext(ctx)
	return ok
}

// Get returns the value stored under key in the request scope of ctx, or def
// when there is no scope or no such key.
func Get(ctx context.Context, key string, def any) any {
	rc, ok := FromContext(ctx)
	if !ok {
		return def
	}
	return rc.Get(key, def)
}

// Lookup is Get with an explicit presence result.
func Lookup(ctx context.Context, key string) (any, bool) {
	rc, ok := FromContext(ctx)
	if !ok {
		return nil, false
	}
	return rc.Lookup(key)
}

// Set stores v in the request scope of ctx. It reports false, storing
// nothing, when ctx has no request scope.
func Set(ctx context.Context, key string, v any) bool {
	rc, ok := FromContext(ctx)
	if !ok {
		return false
	}
	rc.Set(key, v)
	return true
}

// RequestID returns the request id of ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := Get(ctx, KeyRequestID, "").(string)
	return id
}

// CorrelationID returns the correlation id of ctx, or "".
func CorrelationID(ctx context.Context) string {
	id, _ := Get(ctx, KeyCorrelationID, "").(string)
	return id
}

// Provider exposes the store to the log enricher.
type Provider struct{}

// Exists reports whether ctx is inside a request scope.
func (Provider) Exists(ctx context.Context) bool {
	return Exists(ctx)
}

// Get returns the value stored under key, or def.
func (Provider) Get(ctx context.Context, key string, def any) any {
	return Get(ctx, key, def)
}

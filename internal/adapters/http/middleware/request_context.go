package middleware

import (
	"net/http"

	"github.com/jsamuelsen11/demo-bd/internal/app/reqctx"
)

// RequestContext returns middleware that attaches a fresh
// reqctx.RequestContext to every request. RequestID and CorrelationID store
// their values in it, and the log sink reads them back through
// reqctx.Provider, so it must run before both.
func RequestContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := reqctx.WithRequestContext(r.Context(), reqctx.New())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

package middleware

import (
	"net/http"

	"github.com/jsamuelsen11/demo-bd/internal/app/reqctx"
)

const headerCorrelationID = reqctx.KeyCorrelationID

// CorrelationID returns middleware that extracts or derives an
// X-Correlation-ID for each request. If the incoming request has an
// X-Correlation-ID header, it is reused; otherwise the request ID is used as
// a fallback. The ID is stored in the request's reqctx.RequestContext and set
// as a response header.
//
// This middleware must run after RequestID so that the fallback value is
// available.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerCorrelationID)
			if id == "" {
				id = reqctx.RequestID(r.Context())
			}
			reqctx.Set(r.Context(), reqctx.KeyCorrelationID, id)
			w.Header().Set(headerCorrelationID, id)
			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/demo-bd/internal/app/reqctx"
)

const headerRequestID = reqctx.KeyRequestID

// RequestID returns middleware that generates or extracts an X-Request-ID for
// each request. If the incoming request has an X-Request-ID header, it is
// reused; otherwise a new UUID v4 is generated. The ID is stored in the
// request's reqctx.RequestContext and set as a response header.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			reqctx.Set(r.Context(), reqctx.KeyRequestID, id)
			w.Header().Set(headerRequestID, id)
			next.ServeHTTP(w, r)
		})
	}
}

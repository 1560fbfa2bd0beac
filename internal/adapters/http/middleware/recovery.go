package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jsamuelsen11/demo-bd/internal/adapters/http/dto"
	"github.com/jsamuelsen11/demo-bd/internal/platform/logging"
)

// errInternalServer is the generic error returned to clients when a panic is
// recovered. The actual panic value and stack trace are logged but never
// exposed in the HTTP response.
var errInternalServer = errors.New("internal server error")

// Recovery returns middleware that recovers from panics in downstream handlers.
// When a panic occurs the middleware logs a CRITICAL record whose exception
// block carries the panic value and stack, and returns an RFC 9457 500
// response. If the response headers have already been written, only the log
// record is emitted. http.ErrAbortHandler is re-panicked so that net/http
// aborts the connection as usual.
func Recovery(logger *logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity, as net/http does
					panic(v)
				}

				err, ok := v.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", v)
				}
				logger.Critical(r.Context(), "panic recovered",
					logging.WithException(err),
					logging.WithFields("method", r.Method, "path", r.URL.Path),
					logging.WithLoggerName("http.server"),
				)

				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, errInternalServer)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}

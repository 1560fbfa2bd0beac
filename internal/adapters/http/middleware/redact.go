package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/demo-bd/internal/platform/logging"
)

// RedactHeaders converts an http.Header map into a slice of slog.Attr values
// suitable for structured logging, sorted by header name. Headers listed in
// logging.SensitiveHeaders are replaced with "[REDACTED]"; all others are
// included as-is. Multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	keys := slices.Sorted(maps.Keys(headers))

	attrs := make([]slog.Attr, 0, len(keys))
	for _, key := range keys {
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			attrs = append(attrs, slog.String(key, "[REDACTED]"))
		} else {
			attrs = append(attrs, slog.String(key, strings.Join(headers[key], ",")))
		}
	}
	return attrs
}

// HeaderDump returns middleware that logs the redacted request headers at
// DEBUG through logger. It does nothing when DEBUG is disabled.
func HeaderDump(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if logger.Enabled(ctx, slog.LevelDebug) {
				args := make([]any, 0, len(r.Header))
				for _, a := range RedactHeaders(r.Header) {
					args = append(args, a)
				}
				logger.DebugContext(ctx, "request headers",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Group("headers", args...),
				)
			}
			next.ServeHTTP(w, r)
		})
	}
}

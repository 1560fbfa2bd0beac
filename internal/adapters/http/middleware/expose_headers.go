package middleware

import (
	"net/http"
	"strings"
)

// ExposeHeaders returns middleware that lists headers in
// Access-Control-Expose-Headers so that browser clients can read them.
func ExposeHeaders(headers ...string) func(http.Handler) http.Handler {
	value := strings.Join(headers, ", ")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if value != "" {
				w.Header().Set("Access-Control-Expose-Headers", value)
			}
			next.ServeHTTP(w, r)
		})
	}
}

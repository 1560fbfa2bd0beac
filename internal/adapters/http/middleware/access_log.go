package middleware

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/jsamuelsen11/demo-bd/internal/adapters/http/attribution"
	"github.com/jsamuelsen11/demo-bd/internal/platform/logging"
)

// AccessLoggerName is the logger name carried by access records.
const AccessLoggerName = "access"

const unknownClient = "unknown_client"

// AccessLog returns middleware that writes one INFO record per completed
// request:
//
//	127.0.0.1 - "GET /compute?n=3 HTTP/1.1" 200 (0.42ms)
//
// The record's call site is the handler that produced the response, as
// resolved by resolver after dispatch, not this middleware. A panic from
// downstream propagates unchanged and nothing is logged for that request.
func AccessLog(logger *logging.Logger, resolver *attribution.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, _ := attribution.WithState(r.Context())
			r = r.WithContext(ctx)

			start := time.Now()
			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)
			elapsed := time.Since(start)

			ref := resolver.Resolve(r)
			logger.Info(ctx, accessMessage(r, rw.statusCode, elapsed),
				logging.WithCallSite(ref.CallSite()),
				logging.WithLoggerName(AccessLoggerName),
			)
		})
	}
}

func accessMessage(r *http.Request, status int, elapsed time.Duration) string {
	target := r.URL.Path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	ms := float64(elapsed.Nanoseconds()) / float64(time.Millisecond)
	return fmt.Sprintf(`%s - "%s %s HTTP/%s" %d (%.2fms)`,
		clientHost(r.RemoteAddr), r.Method, target, protoVersion(r), status, ms)
}

func clientHost(addr string) string {
	if addr == "" {
		return unknownClient
	}
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	if host == "" {
		return unknownClient
	}
	return host
}

func protoVersion(r *http.Request) string {
	if r.ProtoMajor == 0 {
		return "1.1"
	}
	return fmt.Sprintf("%d.%d", r.ProtoMajor, r.ProtoMinor)
}

package logging

import (
	"context"
	"os"
	"strings"
	"time"
)

// Request context keys read by the Enricher.
const (
	ContextKeyRequestID     = "X-Request-ID"
	ContextKeyCorrelationID = "X-Correlation-ID"
)

// DefaultAppName is used when no application name is configured.
const DefaultAppName = "app"

// ContextProvider exposes the per-request context store. Exists reports
// whether ctx is inside a request scope at all.
type ContextProvider interface {
	Exists(ctx context.Context) bool
	Get(ctx context.Context, key string, def any) any
}

// Enricher fills the contextual fields of a record. Values already present
// on the record are never overwritten.
type Enricher struct {
	AppName  string
	Provider ContextProvider
	Hostname string
	PID      int
	Now      func() time.Time
}

// NewEnricher returns an Enricher for the current process.
func NewEnricher(appName string, provider ContextProvider) *Enricher {
	if appName == "" {
		appName = DefaultAppName
	}
	return &Enricher{
		AppName:  appName,
		Provider: provider,
		Hostname: ShortHostname(),
		PID:      os.Getpid(),
		Now:      time.Now,
	}
}

// Enrich sets datetime, host, pid, correlation_id, request_id and app_name on
// r unless already present. Missing request context yields nil ids.
func (e *Enricher) Enrich(ctx context.Context, r *Record) {
	if r.Extra == nil {
		r.Extra = &Fields{}
	}

	if !r.Extra.Has(KeyDatetime) {
		t := r.Time
		if t.IsZero() {
			t = e.now()
		}
		r.Extra.Set(KeyDatetime, t.UTC())
	}
	r.Extra.SetDefault(KeyHost, e.Hostname)
	r.Extra.SetDefault(KeyPID, e.PID)

	needIDs := !r.Extra.Has(KeyCorrelationID) || !r.Extra.Has(KeyRequestID)
	if needIDs {
		corrID, reqID := e.requestIDs(ctx)
		r.Extra.SetDefault(KeyCorrelationID, corrID)
		r.Extra.SetDefault(KeyRequestID, reqID)
	}

	appName := e.AppName
	if appName == "" {
		appName = DefaultAppName
	}
	r.Extra.SetDefault(KeyAppName, appName)
}

// requestIDs reads the ids from the provider. A misbehaving provider yields
// nil ids instead of failing the log call.
func (e *Enricher) requestIDs(ctx context.Context) (corrID, reqID any) {
	defer func() {
		if recover() != nil {
			corrID, reqID = nil, nil
		}
	}()
	if ctx == nil || e.Provider == nil || !e.Provider.Exists(ctx) {
		return nil, nil
	}
	return e.Provider.Get(ctx, ContextKeyCorrelationID, nil), e.Provider.Get(ctx, ContextKeyRequestID, nil)
}

func (e *Enricher) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// ShortHostname returns HOSTNAME, else COMPUTERNAME, else the system host
// name, cut at the first dot.
func ShortHostname() string {
	host := os.Getenv("HOSTNAME")
	if host == "" {
		host = os.Getenv("COMPUTERNAME")
	}
	if host == "" {
		host, _ = os.Hostname()
	}
	host, _, _ = strings.Cut(host, ".")
	return host
}

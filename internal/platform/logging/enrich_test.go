package logging_test

import (
	"context"
	"testing"
	"time"

	"github.com/jsamuelsen11/demo-bd/internal/platform/logging"
)

func newTestEnricher(provider logging.ContextProvider) *logging.Enricher {
	return &logging.Enricher{
		AppName:  "demo",
		Provider: provider,
		Hostname: "web-1",
		PID:      4242,
		Now: func() time.Time {
			return time.Date(2024, 5, 6, 7, 8, 9, 0, time.FixedZone("X", 3600))
		},
	}
}

func extra(t *testing.T, r *logging.Record, key string) any {
	t.Helper()
	v, ok := r.Extra.Get(key)
	if !ok {
		t.Fatalf("extra %q missing", key)
	}
	return v
}

func TestEnrich_NoRequestContextSetsNullIDs(t *testing.T) {
	t.Parallel()

	for name, provider := range map[string]logging.ContextProvider{
		"no provider":     nil,
		"outside request": mapProvider(nil),
		"missing headers": mapProvider{},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := &logging.Record{}
			newTestEnricher(provider).Enrich(context.Background(), r)

			if v := extra(t, r, logging.KeyCorrelationID); v != nil {
				t.Errorf("correlation_id = %v, want nil", v)
			}
			if v := extra(t, r, logging.KeyRequestID); v != nil {
				t.Errorf("request_id = %v, want nil", v)
			}
		})
	}
}

func TestEnrich_ReadsRequestContext(t *testing.T) {
	t.Parallel()

	r := &logging.Record{Extra: &logging.Fields{}}
	newTestEnricher(mapProvider{
		logging.ContextKeyRequestID:     "req-1",
		logging.ContextKeyCorrelationID: "corr-1",
	}).Enrich(context.Background(), r)

	if v := extra(t, r, logging.KeyRequestID); v != "req-1" {
		t.Errorf("request_id = %v, want req-1", v)
	}
	if v := extra(t, r, logging.KeyCorrelationID); v != "corr-1" {
		t.Errorf("correlation_id = %v, want corr-1", v)
	}
}

func TestEnrich_NeverOverwrites(t *testing.T) {
	t.Parallel()

	preset := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	r := &logging.Record{Extra: logging.NewFields(
		logging.KeyRequestID, "explicit",
		logging.KeyCorrelationID, nil,
		logging.KeyHost, "other-host",
		logging.KeyDatetime, preset,
		logging.KeyAppName, "caller-app",
	)}
	newTestEnricher(mapProvider{
		logging.ContextKeyRequestID:     "req-1",
		logging.ContextKeyCorrelationID: "corr-1",
	}).Enrich(context.Background(), r)

	if v := extra(t, r, logging.KeyRequestID); v != "explicit" {
		t.Errorf("request_id = %v, want explicit", v)
	}
	if v := extra(t, r, logging.KeyCorrelationID); v != nil {
		t.Errorf("correlation_id = %v, want the preset nil", v)
	}
	if v := extra(t, r, logging.KeyHost); v != "other-host" {
		t.Errorf("host = %v, want other-host", v)
	}
	if v := extra(t, r, logging.KeyDatetime); v != preset {
		t.Errorf("datetime = %v, want %v", v, preset)
	}
	if v := extra(t, r, logging.KeyAppName); v != "caller-app" {
		t.Errorf("app_name = %v, want caller-app", v)
	}
}

func TestEnrich_ProcessFields(t *testing.T) {
	t.Parallel()

	r := &logging.Record{}
	newTestEnricher(nil).Enrich(context.Background(), r)

	dt, ok := extra(t, r, logging.KeyDatetime).(time.Time)
	if !ok {
		t.Fatalf("datetime type = %T, want time.Time", extra(t, r, logging.KeyDatetime))
	}
	if dt.Location() != time.UTC || dt.Hour() != 6 {
		t.Errorf("datetime = %v, want 06:08:09 UTC", dt)
	}
	if v := extra(t, r, logging.KeyHost); v != "web-1" {
		t.Errorf("host = %v, want web-1", v)
	}
	if v := extra(t, r, logging.KeyPID); v != 4242 {
		t.Errorf("pid = %v, want 4242", v)
	}
	if v := extra(t, r, logging.KeyAppName); v != "demo" {
		t.Errorf("app_name = %v, want demo", v)
	}
}

func TestEnrich_RecordTimeWins(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	r := &logging.Record{Time: at}
	newTestEnricher(nil).Enrich(context.Background(), r)

	if v := extra(t, r, logging.KeyDatetime); v != at {
		t.Errorf("datetime = %v, want %v", v, at)
	}
}

type panickingProvider struct{}

func (panickingProvider) Exists(context.Context) bool { return true }

func (panickingProvider) Get(context.Context, string, any) any { panic("store closed") }

func TestEnrich_ProviderPanicYieldsNullIDs(t *testing.T) {
	t.Parallel()

	r := &logging.Record{}
	newTestEnricher(panickingProvider{}).Enrich(context.Background(), r)

	if v := extra(t, r, logging.KeyRequestID); v != nil {
		t.Errorf("request_id = %v, want nil", v)
	}
}

func TestNewEnricher_DefaultAppName(t *testing.T) {
	t.Parallel()

	e := logging.NewEnricher("", nil)
	if e.AppName != logging.DefaultAppName {
		t.Errorf("AppName = %q, want %q", e.AppName, logging.DefaultAppName)
	}
}

func TestShortHostname(t *testing.T) {
	t.Setenv("HOSTNAME", "web-1.prod.example.com")
	t.Setenv("COMPUTERNAME", "ignored")

	if got := logging.ShortHostname(); got != "web-1" {
		t.Errorf("ShortHostname() = %q, want %q", got, "web-1")
	}
}

func TestShortHostname_ComputerName(t *testing.T) {
	t.Setenv("HOSTNAME", "")
	t.Setenv("COMPUTERNAME", "DESKTOP-7.corp")

	if got := logging.ShortHostname(); got != "DESKTOP-7" {
		t.Errorf("ShortHostname() = %q, want %q", got, "DESKTOP-7")
	}
}

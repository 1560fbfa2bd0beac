package reqctx_test

import (
	"context"
	"slices"
	"sync"
	"testing"

	"github.com/jsamuelsen11/demo-bd/internal/app/reqctx"
	"github.com/jsamuelsen11/demo-bd/internal/platform/logging"
)

var _ logging.ContextProvider = reqctx.Provider{}

// --- Outside a request ---

func TestExists_NoScope(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	if reqctx.Exists(ctx) {
		t.Error("Exists() = true on a bare context")
	}
	if got := reqctx.Get(ctx, reqctx.KeyRequestID, "fallback"); got != "fallback" {
		t.Errorf("Get() = %v, want the default", got)
	}
	if reqctx.Set(ctx, "k", "v") {
		t.Error("Set() = true without a request scope")
	}
	if _, ok := reqctx.Lookup(ctx, "k"); ok {
		t.Error("Lookup() found a value without a request scope")
	}
	if got := reqctx.RequestID(ctx); got != "" {
		t.Errorf("RequestID() = %q, want empty", got)
	}
}

func TestFromContext_NilContext(t *testing.T) {
	t.Parallel()

	//nolint:staticcheck // nil context is what the enricher may receive
	if _, ok := reqctx.FromContext(nil); ok {
		t.Error("FromContext(nil) reported a scope")
	}
}

// --- Inside a request ---

func TestSetGet(t *testing.T) {
	t.Parallel()

	ctx := reqctx.WithRequestContext(context.Background(), reqctx.New())

	if !reqctx.Exists(ctx) {
		t.Fatal("Exists() = false inside a scope")
	}
	if !reqctx.Set(ctx, reqctx.KeyRequestID, "req-1") {
		t.Fatal("Set() = false inside a scope")
	}
	reqctx.Set(ctx, reqctx.KeyCorrelationID, "corr-1")

	if got := reqctx.RequestID(ctx); got != "req-1" {
		t.Errorf("RequestID() = %q, want req-1", got)
	}
	if got := reqctx.CorrelationID(ctx); got != "corr-1" {
		t.Errorf("CorrelationID() = %q, want corr-1", got)
	}
	if got := reqctx.Get(ctx, "missing", 7); got != 7 {
		t.Errorf("Get(missing) = %v, want the default 7", got)
	}
}

func TestLookup_StoredNil(t *testing.T) {
	t.Parallel()

	rc := reqctx.New()
	rc.Set("k", nil)

	v, ok := rc.Lookup("k")
	if !ok || v != nil {
		t.Errorf("Lookup(k) = %v, %v, want nil, true", v, ok)
	}
	if got := rc.Get("k", "def"); got != nil {
		t.Errorf("Get(k) = %v, want the stored nil", got)
	}
}

func TestKeys_Sorted(t *testing.T) {
	t.Parallel()

	rc := reqctx.New()
	rc.Set("b", 1)
	rc.Set("a", 2)

	if got := rc.Keys(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Keys() = %v, want [a b]", got)
	}
}

func TestRequestContext_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	ctx := reqctx.WithRequestContext(context.Background(), reqctx.New())

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Go(func() {
			reqctx.Set(ctx, "k", i)
			_ = reqctx.Get(ctx, "k", nil)
		})
	}
	wg.Wait()

	if _, ok := reqctx.Lookup(ctx, "k"); !ok {
		t.Error("value lost under concurrent writes")
	}
}

func TestProvider(t *testing.T) {
	t.Parallel()

	var p reqctx.Provider
	ctx := reqctx.WithRequestContext(context.Background(), reqctx.New())
	reqctx.Set(ctx, logging.ContextKeyRequestID, "req-2")

	if !p.Exists(ctx) {
		t.Error("Provider.Exists() = false inside a scope")
	}
	if got := p.Get(ctx, logging.ContextKeyRequestID, nil); got != "req-2" {
		t.Errorf("Provider.Get() = %v, want req-2", got)
	}
	if got := p.Get(ctx, logging.ContextKeyCorrelationID, nil); got != nil {
		t.Errorf("Provider.Get(correlation) = %v, want nil", got)
	}
}

func TestProvider_FeedsEnricher(t *testing.T) {
	t.Parallel()

	ctx := reqctx.WithRequestContext(context.Background(), reqctx.New())
	reqctx.Set(ctx, reqctx.KeyRequestID, "req-3")

	r := &logging.Record{}
	logging.NewEnricher("demo", reqctx.Provider{}).Enrich(ctx, r)

	if v, _ := r.Extra.Get(logging.KeyRequestID); v != "req-3" {
		t.Errorf("request_id = %v, want req-3", v)
	}
	if v, ok := r.Extra.Get(logging.KeyCorrelationID); !ok || v != nil {
		t.Errorf("correlation_id = %v, %v, want nil, true", v, ok)
	}
}

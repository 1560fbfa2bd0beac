package logging_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/jsamuelsen11/demo-bd/internal/platform/logging"
)

func TestLogger_WritesOneLinePerRecord(t *testing.T) {
	t.Parallel()

	sink, buf := newBufferSink(logging.Options{AppName: "demo"})

	sink.Info(context.Background(), "started")

	out := buf.String()
	if strings.Count(out, "\n") != 1 {
		t.Errorf("output = %q, want one line", out)
	}
	if !strings.Contains(out, " | demo | ") || !strings.Contains(out, " | INFO     | ") {
		t.Errorf("output = %q, want app name and INFO level", out)
	}
	if !strings.HasSuffix(out, " | started\n") {
		t.Errorf("output = %q, want message last", out)
	}
}

func TestLogger_CapturesCaller(t *testing.T) {
	t.Parallel()

	sink, buf := newBufferSink(logging.Options{})

	sink.Warning(context.Background(), "direct")
	sink.Log(context.Background(), logging.LevelInfo, "via log")

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if !strings.Contains(line, "logging_test:TestLogger_CapturesCaller:") {
			t.Errorf("line = %q, want the test function as call site", line)
		}
	}
}

func TestLogger_CallSiteOverride(t *testing.T) {
	t.Parallel()

	sink, buf := newBufferSink(logging.Options{})

	sink.Info(context.Background(), "GET /",
		logging.WithCallSite(&logging.CallSite{Module: "example/handlers", LogicalName: "Hello", Line: 7}),
		logging.WithLoggerName("access"),
	)

	if !strings.Contains(buf.String(), " | example/handlers:Hello:7 | GET /") {
		t.Errorf("output = %q, want the overridden call site", buf.String())
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	t.Parallel()

	sink, buf := newBufferSink(logging.Options{Level: logging.LevelWarning})

	sink.Trace(context.Background(), "trace")
	sink.Debug(context.Background(), "debug")
	sink.Info(context.Background(), "info")
	if buf.Len() != 0 {
		t.Errorf("records below WARNING written: %q", buf.String())
	}

	sink.Error(context.Background(), "error")
	sink.Critical(context.Background(), "critical")
	if n := strings.Count(buf.String(), "\n"); n != 2 {
		t.Errorf("lines = %d, want 2", n)
	}
}

func TestLogger_Reconfigure(t *testing.T) {
	t.Parallel()

	sink, buf := newBufferSink(logging.Options{Level: logging.LevelError})

	sink.Info(context.Background(), "hidden")
	sink.Reconfigure(logging.Options{Level: logging.LevelDebug, AppName: "renamed"})
	sink.Info(context.Background(), "shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("output = %q, want only the record after Reconfigure", out)
	}
	if !strings.Contains(out, " | renamed | ") {
		t.Errorf("output = %q, want the new app name", out)
	}
	if !sink.Enabled(logging.LevelDebug) || sink.Enabled(logging.LevelTrace) {
		t.Error("Enabled does not follow the reconfigured level")
	}
}

func TestLogger_FieldsAndException(t *testing.T) {
	t.Parallel()

	sink, buf := newBufferSink(logging.Options{})

	sink.Error(context.Background(), "failed",
		logging.WithFields("operation", "Fibonacci", "n", 42),
		logging.WithException(errors.New("overflow")),
	)

	out := buf.String()
	for _, want := range []string{
		"\noperation:\nFibonacci\n",
		"\nn:\n42\n",
		"\n" + logging.ExceptionMarker + "*errors.errorString: overflow\n",
		"TestLogger_FieldsAndException",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output = %q, want it to contain %q", out, want)
		}
	}
}

func TestLogger_RequestContext(t *testing.T) {
	t.Parallel()

	sink, buf := newBufferSink(logging.Options{
		Provider: mapProvider{
			logging.ContextKeyRequestID:     "req-9",
			logging.ContextKeyCorrelationID: "corr-9",
		},
	})

	sink.Info(context.Background(), "with ids")

	if !strings.Contains(buf.String(), " | corr-9 | req-9 | ") {
		t.Errorf("output = %q, want correlation and request ids", buf.String())
	}
}

func TestLogger_ConcurrentWritesDoNotInterleave(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := logging.New(zapcore.Lock(zapcore.AddSync(&buf)), logging.Options{})

	const n = 50
	var wg sync.WaitGroup
	for range n {
		wg.Go(func() {
			sink.Info(context.Background(), "concurrent")
		})
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != n {
		t.Fatalf("lines = %d, want %d", len(lines), n)
	}
	for _, l := range lines {
		if !strings.HasSuffix(l, " | concurrent") {
			t.Errorf("line = %q, want a whole record", l)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestLogger_WriteErrorIsSwallowed(t *testing.T) {
	t.Parallel()

	sink := logging.New(zapcore.AddSync(failingWriter{}), logging.Options{})

	sink.Info(context.Background(), "lost")
	sink.Info(context.Background(), "lost again")
}

func TestConfigureAndDefault(t *testing.T) {
	var buf bytes.Buffer
	first := logging.Configure(zapcore.AddSync(&buf), logging.Options{Level: logging.LevelInfo})
	if logging.Default() != first {
		t.Fatal("Default() is not the configured logger")
	}

	second := logging.Configure(zapcore.AddSync(&buf), logging.Options{Level: logging.LevelInfo})
	if logging.Default() != second {
		t.Error("Default() kept the first logger, want the last configured one")
	}

	logging.Default().Info(context.Background(), "default")
	if strings.Count(buf.String(), "\n") != 1 {
		t.Errorf("output = %q, want one line", buf.String())
	}
}

package logging

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap/zapcore"
)

// Options configures a Logger.
type Options struct {
	// Level is the minimum level written. The zero value writes everything.
	Level    Level
	AppName  string
	Colorize bool
	// Provider supplies request and correlation ids; nil leaves them empty.
	Provider ContextProvider
}

// snapshot is the immutable configuration read by every log call.
type snapshot struct {
	level     Level
	enricher  *Enricher
	formatter *Formatter
}

// Logger is the structured sink. Each record is enriched, formatted and
// written synchronously on the calling goroutine; the writer is shared by
// every goroutine and must serialize writes itself (see zapcore.Lock).
type Logger struct {
	out       zapcore.WriteSyncer
	cfg       atomic.Pointer[snapshot]
	errOnce   sync.Once
	errOutput zapcore.WriteSyncer
}

// New creates a Logger writing to out.
func New(out zapcore.WriteSyncer, opts Options) *Logger {
	l := &Logger{
		out:       out,
		errOutput: zapcore.Lock(os.Stderr),
	}
	l.Reconfigure(opts)
	return l
}

// Reconfigure replaces the configuration. In-flight log calls finish with the
// configuration they started with.
func (l *Logger) Reconfigure(opts Options) {
	e := NewEnricher(opts.AppName, opts.Provider)
	l.cfg.Store(&snapshot{
		level:     opts.Level,
		enricher:  e,
		formatter: NewFormatter(opts.Colorize),
	})
}

// Enabled reports whether records at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return level.Enabled(l.cfg.Load().level)
}

// Log builds a record and writes it. Without WithCallSite the caller of Log
// is recorded as the call site.
func (l *Logger) Log(ctx context.Context, level Level, msg string, opts ...Option) {
	l.log(ctx, level, msg, 1, opts)
}

// Trace logs at TRACE.
func (l *Logger) Trace(ctx context.Context, msg string, opts ...Option) {
	l.log(ctx, LevelTrace, msg, 1, opts)
}

// Debug logs at DEBUG.
func (l *Logger) Debug(ctx context.Context, msg string, opts ...Option) {
	l.log(ctx, LevelDebug, msg, 1, opts)
}

// Info logs at INFO.
func (l *Logger) Info(ctx context.Context, msg string, opts ...Option) {
	l.log(ctx, LevelInfo, msg, 1, opts)
}

// Warning logs at WARNING.
func (l *Logger) Warning(ctx context.Context, msg string, opts ...Option) {
	l.log(ctx, LevelWarning, msg, 1, opts)
}

// Error logs at ERROR.
func (l *Logger) Error(ctx context.Context, msg string, opts ...Option) {
	l.log(ctx, LevelError, msg, 1, opts)
}

// Critical logs at CRITICAL.
func (l *Logger) Critical(ctx context.Context, msg string, opts ...Option) {
	l.log(ctx, LevelCritical, msg, 1, opts)
}

func (l *Logger) log(ctx context.Context, level Level, msg string, skip int, opts []Option) {
	cfg := l.cfg.Load()
	if !level.Enabled(cfg.level) {
		return
	}

	r := &Record{
		Level:   level,
		Message: msg,
		Time:    time.Now(),
		Extra:   &Fields{},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.CallSite == nil {
		r.CallSite = Caller(skip + 1)
	}

	l.write(ctx, cfg, r)
}

// Write enriches, formats and writes a fully built record. It is the entry
// point for adapters that construct records themselves.
func (l *Logger) Write(ctx context.Context, r *Record) {
	cfg := l.cfg.Load()
	if !r.Level.Enabled(cfg.level) {
		return
	}
	if r.Time.IsZero() {
		r.Time = time.Now()
	}
	l.write(ctx, cfg, r)
}

func (l *Logger) write(ctx context.Context, cfg *snapshot, r *Record) {
	cfg.enricher.Enrich(ctx, r)
	line := cfg.formatter.Format(r)
	if _, err := l.out.Write([]byte(line)); err != nil {
		l.errOnce.Do(func() {
			fmt.Fprintf(l.errOutput, "logging: write failed: %v\n", err)
		})
	}
}

// Sync flushes the underlying writer.
func (l *Logger) Sync() error {
	return l.out.Sync()
}

var (
	defaultMu     sync.Mutex
	defaultLogger atomic.Pointer[Logger]
)

// Configure installs the process-wide Logger. Calling it again replaces it;
// the previous Logger stays usable by whoever still holds it.
func Configure(out zapcore.WriteSyncer, opts Options) *Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	l := New(out, opts)
	defaultLogger.Store(l)
	return l
}

// Default returns the process-wide Logger, creating a stdout Logger at INFO
// on first use when Configure was never called.
func Default() *Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	l := New(zapcore.Lock(os.Stdout), Options{Level: LevelInfo})
	defaultLogger.Store(l)
	return l
}

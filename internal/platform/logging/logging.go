// Package logging is the process's structured log pipeline.
//
// Every record, whatever produced it, ends up in one sink (Logger) which
// enriches it with request and process context, renders it in a
// pipe-delimited text layout and writes it synchronously:
//
//	out, _ := logging.NewOutput(os.Stdout, nil)
//	sink := logging.Configure(out, logging.Options{Level: logging.LevelInfo, AppName: "demo-bd"})
//	sink.Info(ctx, "started", logging.WithField("port", 8080))
//
// The ecosystem facilities are bridged into the same sink. SetupIntercept
// installs an slog.Handler as the slog default, which also captures the
// standard log package, and can hook zap's globals:
//
//	logging.SetupIntercept(logging.LevelInfo, []string{"zap"}, []string{"noisy"})
//	slog.Info("via slog")                  // through the bridge
//	logging.Bridge().Logger("noisy").Info("dropped")
//
// Application code keeps logging with slog. Request-scoped loggers travel in
// the context:
//
//	ctx = logging.WithLogger(ctx, logger)
//	logger = logging.FromContext(ctx)
//
// Error logs should carry the operation name and the error itself under the
// "error" key; the bridge renders it as an exception block:
//
//	logger.ErrorContext(ctx, "compute failed",
//	    slog.String("operation", "Fibonacci"),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"log/slog"
)

// contextKey is the unexported key type for storing loggers in context.
type contextKey struct{}

// WithLogger returns a new context with the given logger stored in it.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext extracts a *slog.Logger from the context.
// If no logger is stored, it returns slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

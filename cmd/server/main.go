// Package main is the entry point for the service. It loads configuration,
// sets up the log pipeline, wires all dependencies using samber/do v2,
// starts the HTTP server, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	adapthttp "github.com/jsamuelsen11/demo-bd/internal/adapters/http"
	"github.com/jsamuelsen11/demo-bd/internal/app/reqctx"
	"github.com/jsamuelsen11/demo-bd/internal/platform/config"
	"github.com/jsamuelsen11/demo-bd/internal/platform/logging"
	"github.com/jsamuelsen11/demo-bd/internal/platform/telemetry"
	"github.com/jsamuelsen11/demo-bd/internal/ports"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	profile   string
	configDir string
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "server",
		Short:         "Run the demo-bd HTTP service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.profile == "" {
				return errors.New("a profile is required: set --profile or APP_PROFILE (e.g. local, prod)")
			}
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.profile, "profile", os.Getenv("APP_PROFILE"), "configuration profile to load")
	cmd.Flags().StringVar(&opts.configDir, "config-dir", "configs", "directory holding base.yaml and the profile files")

	return cmd
}

func run(ctx context.Context, opts *options) error {
	cfg, err := config.Load(opts.profile, config.WithConfigDir(opts.configDir))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	out, sink, bridge, err := initLogging(cfg)
	if err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	defer func() {
		if err := out.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "closing log output: %v\n", err)
		}
	}()

	zap.L().Info("configuration loaded",
		zap.String("profile", opts.profile),
		zap.String("environment", cfg.App.Environment),
		zap.String("log_file", out.FilePath()),
	)

	telemetry.InstallErrorHandler(bridge.Logger("otel"))
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, sink)
	do.ProvideValue(injector, bridge)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, time.Now())

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(out)

	logger := bridge.Logger("main")

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		_ = otel.Shutdown(context.Background())
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// initLogging builds the log outputs, installs the process-wide sink and
// routes slog, the standard log package and the configured ecosystem
// loggers into it.
func initLogging(cfg *config.Config) (*logging.Output, *logging.Logger, *logging.Intercept, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, nil, err
	}

	var file *logging.FileOptions
	if cfg.Log.File.Enabled {
		file = &logging.FileOptions{
			Path:           cfg.Log.File.Path,
			MaxSizeMB:      cfg.Log.File.MaxSize,
			MaxBackups:     cfg.Log.File.MaxBackups,
			MaxAgeDays:     cfg.Log.File.MaxAge,
			Compress:       cfg.Log.File.Compress,
			RotateInterval: cfg.Log.File.RotateInterval,
		}
	}

	out, err := logging.NewOutput(os.Stdout, file)
	if err != nil {
		return nil, nil, nil, err
	}

	sink := logging.Configure(out, logging.Options{
		Level:    level,
		AppName:  cfg.App.Slug,
		Colorize: logging.ResolveColor(cfg.Log.Colorize, os.Stdout),
		Provider: reqctx.Provider{},
	})
	bridge := logging.SetupIntercept(level, cfg.Log.Intercept.Modules, cfg.Log.Intercept.Ignored)

	return out, sink, bridge, nil
}

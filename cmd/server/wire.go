package main

import (
	nethttp "net/http"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/demo-bd/internal/adapters/http"
	"github.com/jsamuelsen11/demo-bd/internal/adapters/http/attribution"
	"github.com/jsamuelsen11/demo-bd/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/demo-bd/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/demo-bd/internal/app"
	"github.com/jsamuelsen11/demo-bd/internal/app/reqctx"
	"github.com/jsamuelsen11/demo-bd/internal/platform/config"
	"github.com/jsamuelsen11/demo-bd/internal/platform/health"
	"github.com/jsamuelsen11/demo-bd/internal/platform/logging"
	"github.com/jsamuelsen11/demo-bd/internal/platform/telemetry"
	"github.com/jsamuelsen11/demo-bd/internal/ports"
)

// registerDependencies provides every component of the service. The config,
// the sink, the bridge and the telemetry metrics must already be provided.
func registerDependencies(injector *do.RootScope, cfg *config.Config, startedAt time.Time) {
	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ComputeService, error) {
		bridge := do.MustInvoke[*logging.Intercept](i)
		return app.NewComputeService(cfg.Compute.MaxN, bridge.Logger("compute")), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.InfoService, error) {
		return app.NewInfoService(app.AppInfo{
			Name:        cfg.App.Slug,
			Title:       cfg.App.Title,
			Version:     cfg.App.Version,
			Environment: cfg.App.Environment,
		}, startedAt), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		info := do.MustInvoke[ports.InfoService](i)
		return handlers.NewHealthHandler(registry, info), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ComputeHandler, error) {
		svc := do.MustInvoke[ports.ComputeService](i)
		return handlers.NewComputeHandler(svc, cfg.Compute.MaxN), nil
	})

	do.Provide(injector, func(_ do.Injector) (*attribution.Registry, error) {
		return attribution.NewRegistry(), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		computeH := do.MustInvoke[*handlers.ComputeHandler](i)
		refs := do.MustInvoke[*attribution.Registry](i)
		sink := do.MustInvoke[*logging.Logger](i)
		bridge := do.MustInvoke[*logging.Intercept](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(healthH, computeH, refs,
			middleware.Recovery(sink),
			middleware.RequestContext(),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.ExposeHeaders(reqctx.KeyRequestID, reqctx.KeyCorrelationID),
			middleware.OpenTelemetry(metrics),
			middleware.AccessLog(sink, attribution.NewResolver(refs)),
			middleware.HeaderDump(bridge.Logger("http.headers")),
			middleware.Timeout(cfg.Server.RequestTimeout, bridge.Logger("http.server")),
		)
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		bridge := do.MustInvoke[*logging.Intercept](i)
		return adapthttp.NewServer(cfg.Server, handler, bridge.Logger("http.server")), nil
	})
}

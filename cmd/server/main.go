// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/task-saga-service/internal/adapters/http"
	"github.com/jsamuelsen11/task-saga-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/task-saga-service/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/task-saga-service/internal/adapters/clients/itemstore"
	"github.com/jsamuelsen11/task-saga-service/internal/adapters/journal/sqlite"
	"github.com/jsamuelsen11/task-saga-service/internal/adapters/memstore"
	"github.com/jsamuelsen11/task-saga-service/internal/adapters/repository"
	"github.com/jsamuelsen11/task-saga-service/internal/app"
	"github.com/jsamuelsen11/task-saga-service/internal/app/saga"
	"github.com/jsamuelsen11/task-saga-service/internal/platform/config"
	"github.com/jsamuelsen11/task-saga-service/internal/platform/health"
	"github.com/jsamuelsen11/task-saga-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/task-saga-service/internal/platform/logging"
	"github.com/jsamuelsen11/task-saga-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/task-saga-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second

	itemStoreServiceName = "item-store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger, otel.metricsHandler)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[ports.HealthChecker](injector))

	var journal *sqlite.Journal
	if cfg.Saga.Journal.Enabled {
		journal = do.MustInvoke[*sqlite.Journal](injector)
		registry.Register(journal)
	}

	logger.Info("starting task service",
		slog.String("profile", profile),
		slog.String("store_driver", cfg.Store.Driver),
		slog.Bool("journal", cfg.Saga.Journal.Enabled),
	)
	if cfg.Store.Driver == config.DriverHTTP {
		logger.Debug("item store client", slog.Any("client", cfg.Client))
	}

	// Bind before serving so a taken port fails startup synchronously.
	if err := server.Listen(); err != nil {
		return err
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Close the journal after in-flight units have finished compensating.
	if journal != nil {
		if err := journal.Close(); err != nil {
			logger.Error("journal close error", slog.Any("error", err))
		}
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer         *sdktrace.TracerProvider
	meter          *sdkmetric.MeterProvider
	metrics        *telemetry.Metrics
	metricsHandler nethttp.Handler // non-nil only for the prometheus exporter
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	var (
		mp      *sdkmetric.MeterProvider
		handler nethttp.Handler
	)
	if cfg.Telemetry.MetricsExporter() == telemetry.ExporterPrometheus {
		mp, handler, err = telemetry.InitPrometheusMeter(cfg.Telemetry.ServiceName)
	} else {
		mp, err = telemetry.InitMeter(ctx,
			cfg.Telemetry.ServiceName,
			cfg.Telemetry.MetricsExporter(),
			cfg.Telemetry.Endpoint,
		)
	}
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:         tp,
		meter:          mp,
		metrics:        metrics,
		metricsHandler: handler,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger, metricsHandler nethttp.Handler) {
	registerStore(injector, cfg, logger)

	do.Provide(injector, func(_ do.Injector) (*sqlite.Journal, error) {
		return sqlite.Open(cfg.Saga.Journal.Path)
	})

	do.Provide(injector, func(i do.Injector) (*saga.Coordinator, error) {
		store := do.MustInvoke[ports.ItemStore](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		opts := []saga.Option{
			saga.WithMetrics(metrics),
			saga.WithCompensationTimeout(cfg.Saga.CompensationTimeout),
		}
		if cfg.Saga.Journal.Enabled {
			journal, err := do.Invoke[*sqlite.Journal](i)
			if err != nil {
				return nil, fmt.Errorf("opening compensation journal: %w", err)
			}
			opts = append(opts, saga.WithJournal(journal))
		}
		return saga.NewCoordinator(store, logger, opts...), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskRepository, error) {
		store := do.MustInvoke[ports.ItemStore](i)
		coord := do.MustInvoke[*saga.Coordinator](i)
		return repository.NewTaskRepository(store, coord, cfg.Store, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		repo := do.MustInvoke[ports.TaskRepository](i)
		return app.NewTaskService(repo, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TaskHandler, error) {
		svc := do.MustInvoke[ports.TaskService](i)
		return handlers.NewTaskHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		taskH := do.MustInvoke[*handlers.TaskHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(taskH, healthH, metricsHandler,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// registerStore provides the ItemStore for the configured driver together
// with the health checker that reports on it.
func registerStore(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	switch cfg.Store.Driver {
	case config.DriverMemory:
		store := memstore.New()
		do.ProvideValue[ports.ItemStore](injector, store)
		do.ProvideValue[ports.HealthChecker](injector, store)

	default:
		do.Provide(injector, func(i do.Injector) (*itemstore.Client, error) {
			metrics := do.MustInvoke[*telemetry.Metrics](i)
			client := httpclient.New(&cfg.Client, itemStoreServiceName, metrics, logger)
			return itemstore.NewClient(client, cfg.Client.Token, logger), nil
		})
		do.Provide(injector, func(i do.Injector) (ports.ItemStore, error) {
			return do.Invoke[*itemstore.Client](i)
		})
		do.Provide(injector, func(i do.Injector) (ports.HealthChecker, error) {
			return do.Invoke[*itemstore.Client](i)
		})
	}
}

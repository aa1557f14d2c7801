package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell/config"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell/observable"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell/persistence"
	"github.com/bibliotech-pro/bibliotech-go/snapshotstore/oteladapters"
	"github.com/bibliotech-pro/bibliotech-go/snapshotstore/sqlengine"
)

const serviceVersion = "0.1.0"

// app holds everything one CLI invocation needs.
type app struct {
	logger           *slog.Logger
	contextualLogger shell.ContextualLogger
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
	providers        *config.ObservabilityProviders
	closeStorage     config.CloseFunc
	adapter          *persistence.Adapter
	store            *shell.Store
	workflow         *shell.CommandWorkflow
	now              func() time.Time
	newID            func() string
}

func newApp(ctx context.Context, cfg config.Config, logOutput io.Writer) (*app, error) {
	logger := config.NewLogger(logOutput, cfg.LogLevel)

	providers, err := config.NewObservabilityProviders(ctx, cfg.OTLPEndpoint, serviceVersion)
	if err != nil {
		return nil, err
	}

	a := &app{
		logger:           logger,
		contextualLogger: oteladapters.NewSlogBridgeLoggerWithHandler(logger.Handler()),
		metricsCollector: oteladapters.NewMetricsCollector(otel.Meter(config.ServiceName)),
		tracingCollector: oteladapters.NewTracingCollector(otel.Tracer(config.ServiceName)),
		providers:        providers,
		now:              time.Now,
		newID:            uuid.NewString,
	}

	engine, closeStorage, err := config.OpenSnapshotStore(ctx, cfg,
		sqlengine.WithLogger(logger),
		sqlengine.WithContextualLogger(a.contextualLogger),
		sqlengine.WithMetrics(a.metricsCollector),
		sqlengine.WithTracing(a.tracingCollector),
	)
	if err != nil {
		return nil, errors.Join(err, providers.Shutdown())
	}

	a.closeStorage = closeStorage
	a.adapter = persistence.NewAdapter(engine,
		persistence.WithLogger(logger),
		persistence.WithContextualLogger(a.contextualLogger),
	)
	a.store = shell.NewStoreFromLibraryData(a.adapter.Load(ctx))

	a.workflow, err = shell.NewCommandWorkflow(a.store,
		shell.WithPersister(a.adapter),
		shell.WithIDGenerator(a.newID),
		shell.WithRetryMetrics(a.metricsCollector),
	)
	if err != nil {
		return nil, errors.Join(err, a.close())
	}

	return a, nil
}

func (a *app) close() error {
	var storageErr error
	if a.closeStorage != nil {
		storageErr = a.closeStorage()
	}

	return errors.Join(storageErr, a.providers.Shutdown())
}

// runCommand executes command through core with the observability decorators applied.
func runCommand[C shell.Command](ctx context.Context, a *app, core shell.CoreCommandHandler[C], command C) (shell.HandlerResult, error) {
	handler, err := observable.NewCommandWrapper[C](core,
		observable.WithCommandMetrics[C](a.metricsCollector),
		observable.WithCommandTracing[C](a.tracingCollector),
		observable.WithCommandContextualLogging[C](a.contextualLogger),
	)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	return handler.Handle(ctx, command)
}

// runQuery executes query through core with the observability decorators applied.
func runQuery[Q shell.Query, R shell.QueryResult](ctx context.Context, a *app, core shell.CoreQueryHandler[Q, R], query Q) (R, error) {
	handler, err := observable.NewQueryWrapper[Q, R](core,
		observable.WithQueryMetrics[Q, R](a.metricsCollector),
		observable.WithQueryTracing[Q, R](a.tracingCollector),
		observable.WithQueryContextualLogging[Q, R](a.contextualLogger),
	)
	if err != nil {
		var zero R
		return zero, err
	}

	return handler.Handle(ctx, query)
}

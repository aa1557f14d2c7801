// Package observable provides wrappers that instrument command and query handlers
// with metrics, tracing and logging while the handlers themselves stay free of observability code.
//
// Wrappers are applied explicitly at wiring time:
//
//	coreHandler := lendbook.NewCommandHandler(workflow)
//
//	handler, err := observable.NewCommandWrapper(
//		coreHandler,
//		observable.WithCommandMetrics[lendbook.Command](metricsCollector),
//		observable.WithCommandTracing[lendbook.Command](tracingCollector),
//		observable.WithCommandContextualLogging[lendbook.Command](contextualLogger),
//	)
//
//	result, err := handler.Handle(ctx, command)
//
// Each concern is optional. Tests of business rules use the core handlers directly.
package observable

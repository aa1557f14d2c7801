package observable_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell/observable"
	"github.com/bibliotech-pro/bibliotech-go/testutil/observability"
)

type mockQuery struct{}

func (mockQuery) QueryType() string { return "TestQuery" }

type mockQueryResult struct {
	Count int
}

func (mockQueryResult) GetVersion() shell.Version { return 3 }

type mockQueryHandler struct {
	result mockQueryResult
	err    error
}

func (h mockQueryHandler) Handle(_ context.Context, _ mockQuery) (mockQueryResult, error) {
	return h.result, h.err
}

func Test_QueryWrapper_Handle_Success(t *testing.T) {
	// arrange
	metricsCollector := observability.NewMetricsCollectorSpy(true)
	tracingCollector := observability.NewTracingCollectorSpy(true)
	logHandler := observability.NewLogHandlerSpy(false)

	wrapper, err := observable.NewQueryWrapper[mockQuery, mockQueryResult](
		mockQueryHandler{result: mockQueryResult{Count: 42}},
		observable.WithQueryMetrics[mockQuery, mockQueryResult](metricsCollector),
		observable.WithQueryTracing[mockQuery, mockQueryResult](tracingCollector),
		observable.WithQueryLogging[mockQuery, mockQueryResult](slog.New(logHandler)),
	)
	require.NoError(t, err)

	// act
	result, err := wrapper.Handle(context.Background(), mockQuery{})

	// assert
	require.NoError(t, err)
	assert.Equal(t, 42, result.Count)
	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.QueryHandlerCallsMetric).
		WithQueryType("TestQuery").
		WithStatus(shell.StatusSuccess).
		Assert())
	assert.True(t, tracingCollector.HasSpanRecordForName(shell.SpanNameQueryHandle).WithStatus(shell.StatusSuccess).Assert())
	assert.True(t, logHandler.HasInfoLog(shell.LogMsgQueryStarted))
	assert.True(t, logHandler.HasLogWithAttribute(slog.LevelInfo, shell.LogMsgQueryCompleted, shell.LogAttrDurationMS))
}

func Test_QueryWrapper_Handle_RecordsCancellation(t *testing.T) {
	// arrange
	metricsCollector := observability.NewMetricsCollectorSpy(true)
	contextualLogger := observability.NewContextualLoggerSpy(true)

	wrapper, err := observable.NewQueryWrapper[mockQuery, mockQueryResult](
		mockQueryHandler{err: context.Canceled},
		observable.WithQueryMetrics[mockQuery, mockQueryResult](metricsCollector),
		observable.WithQueryContextualLogging[mockQuery, mockQueryResult](contextualLogger),
	)
	require.NoError(t, err)

	// act
	_, err = wrapper.Handle(context.Background(), mockQuery{})

	// assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.QueryHandlerCanceledMetric).WithStatus(shell.StatusCanceled).Assert())
	assert.True(t, contextualLogger.HasErrorLog(shell.LogMsgQueryFailed))
}

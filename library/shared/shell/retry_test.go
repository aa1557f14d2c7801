package shell_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell"
	"github.com/bibliotech-pro/bibliotech-go/testutil/observability"
)

func Test_RetryWithExponentialBackoff_SucceedsAfterConflicts(t *testing.T) {
	// arrange
	calls := 0
	fn := func(context.Context) error {
		calls++
		if calls < 3 {
			return shell.ErrConcurrencyConflict
		}

		return nil
	}

	// act
	metrics, err := shell.RetryWithExponentialBackoff(context.Background(), fn, shell.WithBaseDelay(time.Millisecond))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, metrics.Attempts)
	assert.Equal(t, "none", metrics.LastErrorType)
	assert.False(t, metrics.RetriesExhausted)
	assert.Positive(t, metrics.TotalDelay)
}

func Test_RetryWithExponentialBackoff_DoesNotRetry_NonRetryableErrors(t *testing.T) {
	// arrange
	businessErr := errors.New("book unavailable")
	calls := 0

	// act
	metrics, err := shell.RetryWithExponentialBackoff(context.Background(), func(context.Context) error {
		calls++
		return businessErr
	})

	// assert
	assert.ErrorIs(t, err, businessErr)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "other", metrics.LastErrorType)
}

func Test_RetryWithExponentialBackoff_ExhaustsRetries(t *testing.T) {
	// arrange
	metricsCollector := observability.NewMetricsCollectorSpy(true)

	// act
	metrics, err := shell.RetryWithExponentialBackoff(
		context.Background(),
		func(context.Context) error { return shell.ErrConcurrencyConflict },
		shell.WithMaxAttempts(3),
		shell.WithBaseDelay(0),
		shell.WithMetrics(metricsCollector, "LendBook"),
	)

	// assert
	assert.ErrorIs(t, err, shell.ErrConcurrencyConflict)
	assert.Equal(t, 3, metrics.Attempts)
	assert.True(t, metrics.RetriesExhausted)
	assert.True(t, metricsCollector.HasCounterRecord(shell.CommandHandlerRetriesMetric))
	assert.True(t, metricsCollector.HasCounterRecord(shell.CommandHandlerMaxRetriesReachedMetric))
	assert.True(t, metricsCollector.HasDurationRecord(shell.CommandHandlerRetryDelayMetric))
}

func Test_RetryWithExponentialBackoff_StopsOnCanceledContext(t *testing.T) {
	// arrange
	ctx, cancel := context.WithCancel(context.Background())

	// act
	metrics, err := shell.RetryWithExponentialBackoff(ctx, func(context.Context) error {
		cancel()
		return shell.ErrConcurrencyConflict
	}, shell.WithBaseDelay(time.Second))

	// assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, metrics.Attempts)
	assert.Equal(t, "context_canceled", metrics.LastErrorType)
}

func Test_RetryWithExponentialBackoff_ShouldFail_WithInvalidOptions(t *testing.T) {
	testCases := []struct {
		name        string
		option      shell.RetryOption
		expectedErr error
	}{
		{name: "zero attempts", option: shell.WithMaxAttempts(0), expectedErr: shell.ErrInvalidMaxAttempts},
		{name: "negative delay", option: shell.WithBaseDelay(-time.Second), expectedErr: shell.ErrNegativeBaseDelay},
		{name: "jitter above one", option: shell.WithJitterFactor(1.5), expectedErr: shell.ErrInvalidJitterFactor},
		{name: "nil collector", option: shell.WithMetrics(nil, "LendBook"), expectedErr: shell.ErrNilMetricsCollector},
		{name: "empty command type", option: shell.WithMetrics(observability.NewMetricsCollectorSpy(false), ""), expectedErr: shell.ErrEmptyCommandType},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			called := false

			_, err := shell.RetryWithExponentialBackoff(context.Background(), func(context.Context) error {
				called = true
				return nil
			}, tc.option)

			assert.ErrorIs(t, err, tc.expectedErr)
			assert.False(t, called)
		})
	}
}

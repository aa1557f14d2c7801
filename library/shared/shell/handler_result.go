package shell

import "time"

// RetryMetrics is the execution metadata collected by RetryWithExponentialBackoff.
type RetryMetrics struct {
	// Attempts is the total number of attempts made (1 for no retries).
	Attempts int

	// TotalDelay is the cumulative time spent in backoff delays.
	TotalDelay time.Duration

	// LastErrorType describes the final error: "none", "concurrency_conflict", "context_canceled",
	// "context_deadline_exceeded" or "other".
	LastErrorType string

	// RetriesExhausted is true when every attempt failed with a retryable error.
	RetriesExhausted bool
}

// HandlerResult represents the outcome of a command handler execution.
// It captures both business outcomes (idempotency, persistence) and execution metadata (retry information)
// without coupling the handler to specific observability implementations.
type HandlerResult struct {
	// Idempotent indicates that no state change was needed.
	// This is a first-class business outcome, not an error condition.
	Idempotent bool

	// Persisted indicates that the committed change touched books, users or loans and a save was issued.
	Persisted bool

	// Version is the store version after the command, or the observed version for idempotent commands.
	Version Version

	// RetryAttempts is the total number of attempts made (1 for no retries, 2+ for retries).
	RetryAttempts int

	// TotalRetryDelay is the cumulative time spent in retry backoff delays.
	TotalRetryDelay time.Duration

	// LastErrorType describes the type of the final error encountered during retries.
	LastErrorType string

	// RetriesExhausted indicates whether max retry attempts were reached with a retryable error.
	RetriesExhausted bool
}

// NewSuccessResult creates a HandlerResult for operations that changed the state.
func NewSuccessResult(retryMetrics RetryMetrics, version Version, persisted bool) HandlerResult {
	result := fromRetryMetrics(retryMetrics)
	result.Version = version
	result.Persisted = persisted

	return result
}

// NewIdempotentResult creates a HandlerResult for idempotent operations.
func NewIdempotentResult(retryMetrics RetryMetrics, version Version) HandlerResult {
	result := fromRetryMetrics(retryMetrics)
	result.Idempotent = true
	result.Version = version

	return result
}

// NewErrorResult creates a HandlerResult for failed operations.
// This is used when the handler returns an error but still wants to report retry metadata.
func NewErrorResult(retryMetrics RetryMetrics) HandlerResult {
	return fromRetryMetrics(retryMetrics)
}

func fromRetryMetrics(retryMetrics RetryMetrics) HandlerResult {
	return HandlerResult{
		RetryAttempts:    retryMetrics.Attempts,
		TotalRetryDelay:  retryMetrics.TotalDelay,
		LastErrorType:    retryMetrics.LastErrorType,
		RetriesExhausted: retryMetrics.RetriesExhausted,
	}
}

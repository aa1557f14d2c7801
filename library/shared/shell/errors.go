package shell

import "errors"

var (
	// ErrConcurrencyConflict is returned by Store.Commit when the state changed since the expected version.
	ErrConcurrencyConflict = errors.New("concurrency conflict")

	// ErrIdempotentOperation is a sentinel error to indicate an idempotent operation that should be recorded in metrics.
	ErrIdempotentOperation = errors.New("idempotent operation - no state change needed")
)

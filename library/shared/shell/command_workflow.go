package shell

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

// ErrNilStore is returned when a CommandWorkflow is built without a Store.
var ErrNilStore = errors.New("store must not be nil")

// CommandWorkflow runs Snapshot -> Decide -> Commit -> Persist for all command slices.
type CommandWorkflow struct {
	store        *Store
	persister    Persister
	newID        func() string
	retryOptions []RetryOption
	retryMetrics MetricsCollector
}

// WorkflowOption configures a CommandWorkflow.
type WorkflowOption func(*CommandWorkflow)

// WithPersister sets where the library data is saved after commands touching books, users or loans.
func WithPersister(persister Persister) WorkflowOption {
	return func(w *CommandWorkflow) {
		w.persister = persister
	}
}

// WithIDGenerator replaces the uuid based generator used for audit log ids.
func WithIDGenerator(newID func() string) WorkflowOption {
	return func(w *CommandWorkflow) {
		if newID != nil {
			w.newID = newID
		}
	}
}

// WithRetryOptions sets custom retry options for the commit step.
func WithRetryOptions(opts ...RetryOption) WorkflowOption {
	return func(w *CommandWorkflow) {
		w.retryOptions = opts
	}
}

// WithRetryMetrics records retry metrics labeled with the type of each executed command.
func WithRetryMetrics(collector MetricsCollector) WorkflowOption {
	return func(w *CommandWorkflow) {
		w.retryMetrics = collector
	}
}

// NewCommandWorkflow creates a CommandWorkflow working on store.
func NewCommandWorkflow(store *Store, opts ...WorkflowOption) (*CommandWorkflow, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	w := &CommandWorkflow{
		store: store,
		newID: uuid.NewString,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Store exposes the underlying Store for query handlers sharing it.
func (w *CommandWorkflow) Store() *Store {
	return w.store
}

// ExecuteCommand decides command against a snapshot of the state and commits the resulting actions.
// The decision is retried on concurrency conflicts; business errors are returned immediately.
// A successful commit touching books, users or loans is persisted; a failing save does not undo it.
func ExecuteCommand[C Command](
	ctx context.Context,
	w *CommandWorkflow,
	command C,
	decide DecideFunc[C],
) (HandlerResult, error) {
	var (
		idempotent bool
		version    Version
		committed  []core.Action
		next       core.State
	)

	retryOptions := w.retryOptions
	if w.retryMetrics != nil {
		retryOptions = append(slices.Clone(retryOptions), WithMetrics(w.retryMetrics, command.CommandType()))
	}

	retryMetrics, err := RetryWithExponentialBackoff(ctx, func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		state, expected := w.store.Snapshot()

		decision := decide(state, command)
		if decisionErr := decision.HasError(); decisionErr != nil {
			return decisionErr
		}

		if decision.IsIdempotent() {
			idempotent = true
			version = expected

			return nil
		}

		actions := decision.Actions
		if decision.Audit != nil {
			entry := *decision.Audit
			entry.ID = w.newID()
			actions = append(append([]core.Action(nil), actions...), core.AddAuditLog{Log: entry})
		}

		committedState, commitErr := w.store.Commit(expected, actions...)
		if commitErr != nil {
			return commitErr
		}

		idempotent = false
		version = expected + 1
		committed = actions
		next = committedState

		return nil
	}, retryOptions...)

	if err != nil {
		return NewErrorResult(retryMetrics), fmt.Errorf("%s: %w", command.CommandType(), err)
	}

	if idempotent {
		return NewIdempotentResult(retryMetrics, version), nil
	}

	persisted := false
	if w.persister != nil && core.AnyTouchesLibraryData(committed) {
		persisted = w.persister.Save(ctx, next.LibraryData()) == nil
	}

	return NewSuccessResult(retryMetrics, version, persisted), nil
}

package shell_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell"
)

type testCommand struct {
	bookID core.BookIDString
}

func (testCommand) CommandType() string { return "TestCommand" }

type persisterSpy struct {
	mu    sync.Mutex
	saved []core.LibraryData
	err   error
}

func (p *persisterSpy) Save(_ context.Context, data core.LibraryData) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.saved = append(p.saved, data)

	return p.err
}

func (p *persisterSpy) saveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.saved)
}

func deleteBookDecision(state core.State, command testCommand) core.DecisionResult {
	if _, ok := state.FindBook(command.bookID); !ok {
		return core.IdempotentDecision()
	}

	return core.SuccessDecision(core.DeleteBook{BookID: command.bookID}).
		WithAudit(core.BuildAuditLog(core.AuditDelete, core.EntityBook, command.bookID, "deleted", time.Now()))
}

func Test_ExecuteCommand_CommitsActions_AppendsAudit_AndPersists(t *testing.T) {
	// arrange
	store := givenSeededStore(t)
	persister := &persisterSpy{}
	workflow := givenWorkflow(t, store, shell.WithPersister(persister), shell.WithIDGenerator(func() string { return "audit-1" }))

	// act
	result, err := shell.ExecuteCommand(context.Background(), workflow, testCommand{bookID: "1"}, deleteBookDecision)

	// assert
	require.NoError(t, err)
	assert.False(t, result.Idempotent)
	assert.True(t, result.Persisted)
	assert.Equal(t, shell.Version(1), result.Version)
	assert.Equal(t, 1, result.RetryAttempts)

	state, _ := store.Snapshot()
	_, found := state.FindBook("1")
	assert.False(t, found)
	require.Len(t, state.AuditLogs, 1)
	assert.Equal(t, "audit-1", state.AuditLogs[0].ID)

	require.Equal(t, 1, persister.saveCount())
	assert.Len(t, persister.saved[0].Books, 2)
}

func Test_ExecuteCommand_ReturnsIdempotentResult_WithoutCommitting(t *testing.T) {
	// arrange
	store := givenSeededStore(t)
	persister := &persisterSpy{}
	workflow := givenWorkflow(t, store, shell.WithPersister(persister))

	// act
	result, err := shell.ExecuteCommand(context.Background(), workflow, testCommand{bookID: "404"}, deleteBookDecision)

	// assert
	require.NoError(t, err)
	assert.True(t, result.Idempotent)
	assert.Equal(t, shell.Version(0), result.Version)
	assert.Zero(t, persister.saveCount())
}

func Test_ExecuteCommand_DoesNotPersist_WhenOnlySideCollectionsChange(t *testing.T) {
	// arrange
	store := givenSeededStore(t)
	persister := &persisterSpy{}
	workflow := givenWorkflow(t, store, shell.WithPersister(persister))

	decide := func(core.State, testCommand) core.DecisionResult {
		return core.SuccessDecision(core.AddNotification{Notification: core.Notification{ID: "n1"}})
	}

	// act
	result, err := shell.ExecuteCommand(context.Background(), workflow, testCommand{}, decide)

	// assert
	require.NoError(t, err)
	assert.False(t, result.Persisted)
	assert.Zero(t, persister.saveCount())
}

func Test_ExecuteCommand_KeepsTheStateChange_WhenSaveFails(t *testing.T) {
	// arrange
	store := givenSeededStore(t)
	persister := &persisterSpy{err: errors.New("disk full")}
	workflow := givenWorkflow(t, store, shell.WithPersister(persister))

	// act
	result, err := shell.ExecuteCommand(context.Background(), workflow, testCommand{bookID: "2"}, deleteBookDecision)

	// assert
	require.NoError(t, err)
	assert.False(t, result.Persisted)

	state, _ := store.Snapshot()
	_, found := state.FindBook("2")
	assert.False(t, found)
}

func Test_ExecuteCommand_ReturnsBusinessError_WithoutRetry(t *testing.T) {
	// arrange
	store := givenSeededStore(t)
	workflow := givenWorkflow(t, store)
	calls := 0

	decide := func(core.State, testCommand) core.DecisionResult {
		calls++
		return core.ErrorDecision(core.ErrBookUnavailable)
	}

	// act
	result, err := shell.ExecuteCommand(context.Background(), workflow, testCommand{}, decide)

	// assert
	assert.ErrorIs(t, err, core.ErrBookUnavailable)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, result.RetryAttempts)

	_, version := store.Snapshot()
	assert.Equal(t, shell.Version(0), version)
}

func Test_ExecuteCommand_RetriesAfterAConcurrentWrite(t *testing.T) {
	// arrange
	store := givenSeededStore(t)
	workflow := givenWorkflow(t, store, shell.WithRetryOptions(shell.WithBaseDelay(time.Millisecond)))
	calls := 0

	decide := func(state core.State, command testCommand) core.DecisionResult {
		calls++
		if calls == 1 {
			_, err := store.Dispatch(core.AddNotification{Notification: core.Notification{ID: "concurrent"}})
			require.NoError(t, err)
		}

		return deleteBookDecision(state, command)
	}

	// act
	result, err := shell.ExecuteCommand(context.Background(), workflow, testCommand{bookID: "3"}, decide)

	// assert
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, result.RetryAttempts)
	assert.Equal(t, shell.Version(2), result.Version)
}

func Test_ExecuteCommand_ShouldFail_WithCanceledContext(t *testing.T) {
	// arrange
	store := givenSeededStore(t)
	workflow := givenWorkflow(t, store)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// act
	_, err := shell.ExecuteCommand(ctx, workflow, testCommand{bookID: "1"}, deleteBookDecision)

	// assert
	assert.ErrorIs(t, err, context.Canceled)
}

func Test_NewCommandWorkflow_ShouldFail_WithNilStore(t *testing.T) {
	_, err := shell.NewCommandWorkflow(nil)

	assert.ErrorIs(t, err, shell.ErrNilStore)
}

func givenWorkflow(t *testing.T, store *shell.Store, opts ...shell.WorkflowOption) *shell.CommandWorkflow {
	t.Helper()

	workflow, err := shell.NewCommandWorkflow(store, opts...)
	require.NoError(t, err)

	return workflow
}

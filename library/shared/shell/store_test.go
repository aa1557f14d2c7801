package shell_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell"
)

func Test_Store_Commit_AdvancesVersion(t *testing.T) {
	// arrange
	store := givenSeededStore(t)
	_, version := store.Snapshot()

	// act
	next, err := store.Commit(version, core.DeleteLoan{LoanID: "1"})

	// assert
	require.NoError(t, err)
	assert.Empty(t, next.Loans)

	state, newVersion := store.Snapshot()
	assert.Equal(t, version+1, newVersion)
	assert.Equal(t, next, state)
}

func Test_Store_Commit_ShouldFail_WithStaleVersion(t *testing.T) {
	// arrange
	store := givenSeededStore(t)
	_, version := store.Snapshot()
	_, err := store.Dispatch(core.DeleteLoan{LoanID: "1"})
	require.NoError(t, err)

	// act
	_, err = store.Commit(version, core.DeleteBook{BookID: "1"})

	// assert
	assert.ErrorIs(t, err, shell.ErrConcurrencyConflict)
	state, _ := store.Snapshot()
	assert.Len(t, state.Books, 3, "Should leave the state untouched")
}

func Test_Store_Commit_IsAtomic_WhenAnActionFails(t *testing.T) {
	// arrange
	store := givenSeededStore(t)
	before, version := store.Snapshot()

	// act
	_, err := store.Commit(version, core.DeleteBook{BookID: "1"}, core.DeleteUser{UserID: "404"})

	// assert
	assert.ErrorIs(t, err, core.ErrNotFound)

	after, afterVersion := store.Snapshot()
	assert.Equal(t, before, after)
	assert.Equal(t, version, afterVersion)
}

func Test_Store_Dispatch_IsSafeForConcurrentUse(t *testing.T) {
	// arrange
	store := shell.NewStore(core.State{})
	const writers = 20

	// act
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Dispatch(core.AddNotification{Notification: core.Notification{ID: strconv.Itoa(i)}})
		}()
	}
	wg.Wait()

	// assert
	state, version := store.Snapshot()
	assert.Len(t, state.Notifications, writers)
	assert.Equal(t, shell.Version(writers), version)
}

func givenSeededStore(t *testing.T) *shell.Store {
	t.Helper()

	return shell.NewStoreFromLibraryData(core.SeedData())
}

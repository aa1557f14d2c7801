package persistence_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell/persistence"
	"github.com/bibliotech-pro/bibliotech-go/snapshotstore"
	"github.com/bibliotech-pro/bibliotech-go/snapshotstore/memoryengine"
	"github.com/bibliotech-pro/bibliotech-go/testutil/observability"
)

type failingSnapshotStore struct {
	loadErr error
	saveErr error
	saves   int
}

func (s *failingSnapshotStore) Save(_ context.Context, _ snapshotstore.Snapshot) error {
	s.saves++
	return s.saveErr
}

func (s *failingSnapshotStore) Load(_ context.Context, _ string) (snapshotstore.Snapshot, error) {
	return snapshotstore.Snapshot{}, s.loadErr
}

func Test_Adapter_Load_ReturnsAndPersistsSeed_WhenStoreIsEmpty(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewSnapshotStore()
	logger := observability.NewContextualLoggerSpy(true)
	adapter := persistence.NewAdapter(store, persistence.WithContextualLogger(logger))

	// act
	data := adapter.Load(ctx)

	// assert
	assert.Equal(t, core.SeedData(), data)
	assert.True(t, logger.HasWarnLog(shell.LogMsgPersistenceSeeded))

	stored, err := store.Load(ctx, persistence.StorageKey)
	require.NoError(t, err, "Should persist the seed immediately")
	assert.Equal(t, uint64(1), stored.Version)
}

func Test_Adapter_SeedRoundTripsUnchanged(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewSnapshotStore()
	first := persistence.NewAdapter(store).Load(ctx)

	// act
	second := persistence.NewAdapter(store).Load(ctx)

	// assert
	assert.Equal(t, first, second)
}

func Test_Adapter_SaveThenLoad_RoundTrips(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewSnapshotStore()
	adapter := persistence.NewAdapter(store)
	data := adapter.Load(ctx)
	data.Books = data.Books[:1]

	// act
	err := adapter.Save(ctx, data)
	loaded := persistence.NewAdapter(store).Load(ctx)

	// assert
	require.NoError(t, err)
	assert.Equal(t, data, loaded)
}

func Test_Adapter_Load_FallsBackToSeed_WhenTheDocumentIsCorrupt(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewSnapshotStore()
	require.NoError(t, store.Save(ctx, snapshotstore.Snapshot{Key: persistence.StorageKey, Data: []byte(`{"books": 42}`)}))
	logger := observability.NewContextualLoggerSpy(true)

	// act
	data := persistence.NewAdapter(store, persistence.WithContextualLogger(logger)).Load(ctx)

	// assert
	assert.Equal(t, core.SeedData(), data)
	assert.True(t, logger.HasErrorLog(shell.LogMsgPersistenceLoadFailed))
}

func Test_Adapter_Load_FallsBackToSeed_WhenTheStoreFails(t *testing.T) {
	// arrange
	store := &failingSnapshotStore{loadErr: errors.New("connection refused")}
	logger := observability.NewContextualLoggerSpy(true)

	// act
	data := persistence.NewAdapter(store, persistence.WithContextualLogger(logger)).Load(context.Background())

	// assert
	assert.Equal(t, core.SeedData(), data)
	assert.True(t, logger.HasErrorLog(shell.LogMsgPersistenceLoadFailed))
	assert.Equal(t, 1, store.saves)
}

func Test_Adapter_Save_LogsAndWrapsFailures(t *testing.T) {
	// arrange
	store := &failingSnapshotStore{saveErr: errors.New("quota exceeded")}
	logger := observability.NewContextualLoggerSpy(true)
	adapter := persistence.NewAdapter(store, persistence.WithContextualLogger(logger))

	// act
	err := adapter.Save(context.Background(), core.SeedData())

	// assert
	assert.ErrorIs(t, err, core.ErrPersistenceWriteFailed)
	assert.True(t, logger.HasErrorLog(shell.LogMsgPersistenceSaveFailed))
}

func Test_Adapter_Reset_StoresTheSeed(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewSnapshotStore()
	adapter := persistence.NewAdapter(store, persistence.WithStorageKey("test-key"))
	require.NoError(t, adapter.Save(ctx, core.LibraryData{}))

	// act
	seed, err := adapter.Reset(ctx)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.SeedData(), seed)
	assert.Equal(t, seed, adapter.Load(ctx))
}

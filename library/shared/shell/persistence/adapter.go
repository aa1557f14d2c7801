package persistence

import (
	"context"
	"errors"
	"sync"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell"
	"github.com/bibliotech-pro/bibliotech-go/snapshotstore"
)

// StorageKey is the fixed key the library document is stored under.
const StorageKey = "biblioteca-data"

const (
	opLoad   = "load"
	opDecode = "decode"
	opSave   = "save"
)

// SnapshotStore defines what the Adapter needs from a snapshot storage engine.
type SnapshotStore interface {
	Save(ctx context.Context, snapshot snapshotstore.Snapshot) error
	Load(ctx context.Context, key string) (snapshotstore.Snapshot, error)
}

// Adapter loads and saves core.LibraryData through a SnapshotStore.
// It implements shell.Persister.
type Adapter struct {
	store            SnapshotStore
	key              string
	logger           shell.Logger
	contextualLogger shell.ContextualLogger

	mu      sync.Mutex
	version snapshotstore.VersionUint
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithStorageKey overrides StorageKey.
func WithStorageKey(key string) Option {
	return func(a *Adapter) {
		if key != "" {
			a.key = key
		}
	}
}

// WithLogger sets the logger for persistence outcomes.
func WithLogger(logger shell.Logger) Option {
	return func(a *Adapter) {
		a.logger = logger
	}
}

// WithContextualLogger sets a context-aware logger, preferred over WithLogger.
func WithContextualLogger(logger shell.ContextualLogger) Option {
	return func(a *Adapter) {
		a.contextualLogger = logger
	}
}

// NewAdapter creates an Adapter on top of store.
func NewAdapter(store SnapshotStore, opts ...Option) *Adapter {
	a := &Adapter{
		store: store,
		key:   StorageKey,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Load returns the stored library data. When nothing is stored, or the stored document can't be
// read, the seed dataset is returned and persisted. Load never fails.
func (a *Adapter) Load(ctx context.Context) core.LibraryData {
	snapshot, err := a.store.Load(ctx, a.key)

	switch {
	case errors.Is(err, snapshotstore.ErrSnapshotNotFound):
		a.logWarn(ctx, shell.LogMsgPersistenceSeeded, shell.LogAttrSnapshotKey, a.key, shell.LogAttrReason, "no stored data")
		return a.seed(ctx)

	case err != nil:
		a.logError(ctx, shell.LogMsgPersistenceLoadFailed, opLoad, errors.Join(core.ErrPersistenceReadFailed, err))
		return a.seed(ctx)
	}

	data, err := DecodeLibraryData(snapshot.Data)
	if err != nil {
		a.logError(ctx, shell.LogMsgPersistenceLoadFailed, opDecode, errors.Join(core.ErrPersistenceReadFailed, err))
		return a.seed(ctx)
	}

	a.mu.Lock()
	a.version = snapshot.Version
	a.mu.Unlock()

	a.logInfo(ctx, shell.LogMsgPersistenceLoaded, data, snapshot.Version)

	return data
}

// Save overwrites the stored document with data. A failure is logged and returned wrapped in
// core.ErrPersistenceWriteFailed so callers can report it; it never affects the in-memory state.
func (a *Adapter) Save(ctx context.Context, data core.LibraryData) error {
	raw, err := EncodeLibraryData(data)
	if err != nil {
		return a.saveFailed(ctx, err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	snapshot, err := snapshotstore.BuildSnapshot(a.key, a.version+1, raw)
	if err != nil {
		return a.saveFailed(ctx, err)
	}

	if err = a.store.Save(ctx, snapshot); err != nil {
		return a.saveFailed(ctx, err)
	}

	a.version = snapshot.Version
	a.logInfo(ctx, shell.LogMsgPersistenceSaved, data, snapshot.Version)

	return nil
}

// Reset replaces the stored document with the seed dataset and returns it.
func (a *Adapter) Reset(ctx context.Context) (core.LibraryData, error) {
	seed := core.SeedData()

	return seed, a.Save(ctx, seed)
}

func (a *Adapter) seed(ctx context.Context) core.LibraryData {
	seed := core.SeedData()
	_ = a.Save(ctx, seed) // already logged

	return seed
}

func (a *Adapter) saveFailed(ctx context.Context, cause error) error {
	err := errors.Join(core.ErrPersistenceWriteFailed, cause)
	a.logError(ctx, shell.LogMsgPersistenceSaveFailed, opSave, err)

	return err
}

func (a *Adapter) logInfo(ctx context.Context, msg string, data core.LibraryData, version snapshotstore.VersionUint) {
	args := []any{
		shell.LogAttrSnapshotKey, a.key,
		shell.LogAttrVersion, version,
		shell.LogAttrBookCount, len(data.Books),
		shell.LogAttrUserCount, len(data.Users),
		shell.LogAttrLoanCount, len(data.Loans),
	}

	if a.contextualLogger != nil {
		a.contextualLogger.InfoContext(ctx, msg, args...)
	} else if a.logger != nil {
		a.logger.Info(msg, args...)
	}
}

func (a *Adapter) logWarn(ctx context.Context, msg string, args ...any) {
	if a.contextualLogger != nil {
		a.contextualLogger.WarnContext(ctx, msg, args...)
	} else if a.logger != nil {
		a.logger.Warn(msg, args...)
	}
}

func (a *Adapter) logError(ctx context.Context, msg, operation string, err error) {
	args := []any{
		shell.LogAttrSnapshotKey, a.key,
		shell.LogAttrOperation, operation,
		shell.LogAttrError, err.Error(),
	}

	if a.contextualLogger != nil {
		a.contextualLogger.ErrorContext(ctx, msg, args...)
	} else if a.logger != nil {
		a.logger.Error(msg, args...)
	}
}

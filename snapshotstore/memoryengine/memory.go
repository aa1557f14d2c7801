// Package memoryengine keeps snapshots in process memory, for tests and for running without a database.
package memoryengine

import (
	"context"
	"sync"

	"github.com/bibliotech-pro/bibliotech-go/snapshotstore"
)

// SnapshotStore is an in-memory snapshot store keyed by snapshot key.
type SnapshotStore struct {
	mu        sync.Mutex
	snapshots map[string]snapshotstore.Snapshot
}

// NewSnapshotStore creates an empty in-memory store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{
		snapshots: make(map[string]snapshotstore.Snapshot),
	}
}

// EnsureSchema is a no-op; it exists so the store satisfies the same contract as the sql engine.
func (m *SnapshotStore) EnsureSchema(_ context.Context) error {
	return nil
}

// Save replaces the snapshot stored under its key.
func (m *SnapshotStore) Save(ctx context.Context, snapshot snapshotstore.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := snapshot.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot.Data = append([]byte(nil), snapshot.Data...)
	m.snapshots[snapshot.Key] = snapshot

	return nil
}

// Load returns the snapshot under key or snapshotstore.ErrSnapshotNotFound.
func (m *SnapshotStore) Load(ctx context.Context, key string) (snapshotstore.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return snapshotstore.Snapshot{}, err
	}

	if key == "" {
		return snapshotstore.Snapshot{}, snapshotstore.ErrEmptySnapshotKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot, ok := m.snapshots[key]
	if !ok {
		return snapshotstore.Snapshot{}, snapshotstore.ErrSnapshotNotFound
	}

	snapshot.Data = append([]byte(nil), snapshot.Data...)

	return snapshot, nil
}

// Delete removes the snapshot under key. Deleting a missing key is not an error.
func (m *SnapshotStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if key == "" {
		return snapshotstore.ErrEmptySnapshotKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.snapshots, key)

	return nil
}

// Package snapshotstore provides the storage abstractions used to persist
// library snapshots: the Snapshot record, its validation, the shared error
// values, and the dependency-free observability interfaces that all storage
// engines accept.
//
// Engines live in sub-packages:
//   - sqlengine: goqu-built SQL for PostgreSQL (pgx, database/sql, sqlx), SQLite and MySQL
//   - memoryengine: a mutex-guarded in-process map
//
// Common usage pattern:
//
//	snapshot, err := snapshotstore.BuildSnapshot("biblioteca-data", 1, payload)
//	if err != nil {
//		// handle error
//	}
//
//	err = store.Save(ctx, snapshot)
//	loaded, err := store.Load(ctx, "biblioteca-data")
//	if errors.Is(err, snapshotstore.ErrSnapshotNotFound) {
//		// first run
//	}
package snapshotstore

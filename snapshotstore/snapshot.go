package snapshotstore

import (
	"encoding/json"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var (
	// ErrInvalidSnapshotJSON is returned when snapshot JSON data is malformed or invalid.
	ErrInvalidSnapshotJSON = errors.New("snapshot json is not valid")

	// ErrEmptySnapshotKey is returned when an empty snapshot key is provided.
	ErrEmptySnapshotKey = errors.New("snapshot key must not be empty")

	// ErrSnapshotNotFound is returned when no snapshot is stored under the requested key.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrSavingSnapshotFailed is returned when the snapshot save operation fails.
	ErrSavingSnapshotFailed = errors.New("saving snapshot failed")

	// ErrLoadingSnapshotFailed is returned when the snapshot load operation fails.
	ErrLoadingSnapshotFailed = errors.New("loading snapshot failed")

	// ErrDeletingSnapshotFailed is returned when the snapshot delete operation fails.
	ErrDeletingSnapshotFailed = errors.New("deleting snapshot failed")
)

// Snapshot is a stored document under a fixed key, versioned by its writer.
type Snapshot struct {
	Key     string          // Storage key (e.g., "biblioteca-data")
	Version VersionUint     // Writer-defined version of the stored state
	Data    json.RawMessage // Serialized document as JSON
	SavedAt time.Time       // When this snapshot was written
}

// Validate ensures the snapshot has valid data for storage operations.
func (s Snapshot) Validate() error {
	if s.Key == "" {
		return ErrEmptySnapshotKey
	}

	if !jsoniter.ConfigFastest.Valid(s.Data) {
		return ErrInvalidSnapshotJSON
	}

	return nil
}

// BuildSnapshot creates a new Snapshot with validation.
func BuildSnapshot(key string, version VersionUint, data json.RawMessage) (Snapshot, error) {
	snapshot := Snapshot{
		Key:     key,
		Version: version,
		Data:    data,
		SavedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	if err := snapshot.Validate(); err != nil {
		return Snapshot{}, err
	}

	return snapshot, nil
}

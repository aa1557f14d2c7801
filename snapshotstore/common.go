package snapshotstore

import (
	"errors"
)

var (
	// ErrEmptyTableName is returned when an engine is configured with an empty table name.
	ErrEmptyTableName = errors.New("empty table name supplied")

	// ErrUnsupportedDialect is returned when an SQL engine is built for a dialect it cannot serve.
	ErrUnsupportedDialect = errors.New("unsupported sql dialect")

	// ErrNilDatabaseConnection is returned when a nil connection is handed to an engine constructor.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")
)

// VersionUint is a type alias for uint64, representing the version of a stored snapshot.
type VersionUint = uint64

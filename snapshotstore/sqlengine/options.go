package sqlengine

import (
	"regexp"

	"github.com/bibliotech-pro/bibliotech-go/snapshotstore"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Option defines a functional option for configuring SnapshotStore.
type Option func(*SnapshotStore) error

// WithTableName sets the snapshot table name.
// Only plain SQL identifiers are accepted since the name is part of generated DDL.
func WithTableName(tableName string) Option {
	return func(s *SnapshotStore) error {
		if tableName == "" {
			return snapshotstore.ErrEmptyTableName
		}

		if !tableNamePattern.MatchString(tableName) {
			return ErrInvalidTableName
		}

		s.tableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the SnapshotStore.
//
// Debug level: SQL statements with execution timing
// Info level: saved and loaded snapshots with sizes and durations
// Error level: failures that are returned to the caller.
func WithLogger(logger snapshotstore.Logger) Option {
	return func(s *SnapshotStore) error {
		s.logger = logger
		return nil
	}
}

// WithContextualLogger sets a context-aware logger, which gets trace correlation when tracing is enabled.
func WithContextualLogger(logger snapshotstore.ContextualLogger) Option {
	return func(s *SnapshotStore) error {
		s.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for durations, sizes and database errors.
func WithMetrics(collector snapshotstore.MetricsCollector) Option {
	return func(s *SnapshotStore) error {
		s.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector; each engine operation gets its own span.
func WithTracing(collector snapshotstore.TracingCollector) Option {
	return func(s *SnapshotStore) error {
		s.tracingCollector = collector
		return nil
	}
}

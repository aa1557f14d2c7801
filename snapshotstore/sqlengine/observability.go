package sqlengine

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/bibliotech-pro/bibliotech-go/snapshotstore"
)

var (
	// ErrEnsuringSchemaFailed is returned when the snapshot table cannot be created.
	ErrEnsuringSchemaFailed = errors.New("ensuring snapshot schema failed")

	// ErrBuildingQueryFailed is returned when goqu cannot render a statement.
	ErrBuildingQueryFailed = errors.New("building query failed")
)

// Span names.
const (
	spanNameEnsureSchema = "snapshotstore.ensure_schema"
	spanNameSave         = "snapshotstore.save"
	spanNameLoad         = "snapshotstore.load"
	spanNameDelete       = "snapshotstore.delete"
)

// Operations, used as span attribute and metric label.
const (
	operationEnsureSchema = "ensure_schema"
	operationSave         = "save"
	operationLoad         = "load"
	operationDelete       = "delete"
)

// Metric names.
const (
	metricOperationDuration = "snapshotstore_operation_duration_seconds"
	metricSnapshotBytes     = "snapshotstore_snapshot_bytes"
	metricDatabaseErrors    = "snapshotstore_database_errors_total"
)

// Status values.
const (
	statusSuccess  = "success"
	statusError    = "error"
	statusNotFound = "not_found"
)

// Span attributes.
const (
	spanAttrOperation  = "operation"
	spanAttrDialect    = "db.dialect"
	spanAttrTable      = "db.table"
	spanAttrDurationMS = "duration_ms"
)

// Log messages.
const (
	logMsgSQLExecuted        = "snapshotstore: sql executed for "
	logMsgSnapshotSaved      = "snapshotstore: snapshot saved"
	logMsgSnapshotLoaded     = "snapshotstore: snapshot loaded"
	logMsgSaveFailed         = "snapshotstore: save failed"
	logMsgLoadFailed         = "snapshotstore: load failed"
	logMsgDeleteFailed       = "snapshotstore: delete failed"
	logMsgEnsureSchemaFailed = "snapshotstore: ensure schema failed"
	logMsgCloseRowsFailed    = "snapshotstore: closing rows failed"
)

// Log attributes.
const (
	logAttrQuery      = "query"
	logAttrKey        = "key"
	logAttrVersion    = "version"
	logAttrBytes      = "bytes"
	logAttrDurationMS = "duration_ms"
	logAttrError      = "error"
)

func spanNameFor(operation string) string {
	switch operation {
	case operationSave:
		return spanNameSave
	case operationLoad:
		return spanNameLoad
	case operationDelete:
		return spanNameDelete
	default:
		return spanNameEnsureSchema
	}
}

// startSpan starts a tracing span if the tracing collector is configured.
func (s *SnapshotStore) startSpan(ctx context.Context, operation string) (context.Context, snapshotstore.SpanContext) {
	if s.tracingCollector == nil {
		return ctx, nil
	}

	return s.tracingCollector.StartSpan(ctx, spanNameFor(operation), map[string]string{
		spanAttrOperation: operation,
		spanAttrDialect:   string(s.dialect),
		spanAttrTable:     s.tableName,
	})
}

// finishSpan records the duration metric and finishes the span if one was started.
func (s *SnapshotStore) finishSpan(
	ctx context.Context,
	span snapshotstore.SpanContext,
	operation string,
	status string,
	duration time.Duration,
) {
	s.recordDuration(ctx, operation, status, duration)

	if status == statusError {
		s.recordError(ctx, operation)
	}

	if s.tracingCollector == nil || span == nil {
		return
	}

	s.tracingCollector.FinishSpan(span, status, map[string]string{
		spanAttrDurationMS: formatMilliseconds(duration),
	})
}

func (s *SnapshotStore) recordDuration(ctx context.Context, operation, status string, duration time.Duration) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{spanAttrOperation: operation, "status": status}

	if contextual, ok := s.metricsCollector.(snapshotstore.ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(ctx, metricOperationDuration, duration, labels)
		return
	}

	s.metricsCollector.RecordDuration(metricOperationDuration, duration, labels)
}

func (s *SnapshotStore) recordError(ctx context.Context, operation string) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{spanAttrOperation: operation, spanAttrDialect: string(s.dialect)}

	if contextual, ok := s.metricsCollector.(snapshotstore.ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(ctx, metricDatabaseErrors, labels)
		return
	}

	s.metricsCollector.IncrementCounter(metricDatabaseErrors, labels)
}

func (s *SnapshotStore) recordSnapshotSize(ctx context.Context, operation string, size int) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{spanAttrOperation: operation}

	if contextual, ok := s.metricsCollector.(snapshotstore.ContextualMetricsCollector); ok {
		contextual.RecordValueContext(ctx, metricSnapshotBytes, float64(size), labels)
		return
	}

	s.metricsCollector.RecordValue(metricSnapshotBytes, float64(size), labels)
}

// logQueryWithDuration logs SQL statements at debug level if the logger is configured.
func (s *SnapshotStore) logQueryWithDuration(sqlQuery string, operation string, duration time.Duration) {
	if s.logger != nil {
		s.logger.Debug(logMsgSQLExecuted+operation, logAttrDurationMS, toMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs at info level, preferring the contextual logger.
func (s *SnapshotStore) logOperation(ctx context.Context, message string, args ...any) {
	if s.contextualLogger != nil {
		s.contextualLogger.InfoContext(ctx, message, args...)
		return
	}

	if s.logger != nil {
		s.logger.Info(message, args...)
	}
}

func (s *SnapshotStore) logWarn(ctx context.Context, message string, err error) {
	if s.contextualLogger != nil {
		s.contextualLogger.WarnContext(ctx, message, logAttrError, err.Error())
		return
	}

	if s.logger != nil {
		s.logger.Warn(message, logAttrError, err.Error())
	}
}

func (s *SnapshotStore) logError(ctx context.Context, message string, err error, args ...any) {
	allArgs := append([]any{logAttrError, err.Error()}, args...)

	if s.contextualLogger != nil {
		s.contextualLogger.ErrorContext(ctx, message, allArgs...)
		return
	}

	if s.logger != nil {
		s.logger.Error(message, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

func formatMilliseconds(d time.Duration) string {
	return strconv.FormatFloat(toMilliseconds(d), 'f', 3, 64)
}

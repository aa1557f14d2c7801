// Package shell is the imperative shell around the library core.
//
// It owns the mutable Store (the current core.State plus a version counter),
// runs the Snapshot -> Decide -> Commit -> Persist workflow for commands with
// optimistic-concurrency retries, and provides the shared observability helpers
// (metric names, log messages, span helpers) used by the observable wrappers.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell

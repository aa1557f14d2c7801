package shell

import (
	"context"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

// Command represents the contract for all command types.
// Each command encapsulates the intent and parameters needed to execute a specific business operation.
// The CommandType method enables polymorphic handling and observability instrumentation.
type Command interface {
	CommandType() string
}

// CoreCommandHandler defines the contract for components that process commands with pure business logic.
// Implementations should focus purely on business logic without observability concerns.
// This interface is designed to be wrapped with observability decorators for complete functionality.
// Handlers return HandlerResult containing business outcomes (idempotency) and execution metadata (retry info).
type CoreCommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}

// Query represents the contract for all query types.
// Queries can range from simple parameter-less requests to multi-parameter filters, and every
// query that depends on time carries its own reference instant.
type Query interface {
	QueryType() string
}

// QueryResult represents the contract for all query result types (projections).
// GetVersion returns the store version the projection was computed from.
type QueryResult interface {
	GetVersion() Version
}

// CoreQueryHandler defines the contract for components that process queries with pure projection logic.
// The generic parameters Q and R ensure type safety between queries and their corresponding results.
type CoreQueryHandler[Q Query, R QueryResult] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// StateReader is what query handlers need from the Store.
type StateReader interface {
	Snapshot() (core.State, Version)
}

// Persister writes the persisted subset of the state (books, users, loans).
type Persister interface {
	Save(ctx context.Context, data core.LibraryData) error
}

// DecideFunc is the pure business decision of a command slice.
type DecideFunc[C Command] func(state core.State, command C) core.DecisionResult

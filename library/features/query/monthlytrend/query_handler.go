package monthlytrend

import (
	"context"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell"
)

// QueryHandler projects a Store snapshot.
// Observability is added by wrapping it with observable.QueryWrapper.
type QueryHandler struct {
	stateReader shell.StateReader
}

// NewQueryHandler creates a new QueryHandler reading from the given Store.
func NewQueryHandler(stateReader shell.StateReader) QueryHandler {
	return QueryHandler{stateReader: stateReader}
}

// Handle executes the query processing workflow: Snapshot -> Project.
func (h QueryHandler) Handle(ctx context.Context, query Query) (MonthlyTrend, error) {
	if err := ctx.Err(); err != nil {
		return MonthlyTrend{}, err
	}

	state, version := h.stateReader.Snapshot()

	result := Project(state, query)
	result.Version = version

	return result, nil
}

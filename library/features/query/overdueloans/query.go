package overdueloans

import (
	"time"
)

const (
	queryType = "OverdueLoans"
)

// Query asks for the loans overdue at Now.
type Query struct {
	Now time.Time
}

// QueryType returns the type identifier for this query, used for observability and routing.
func (q Query) QueryType() string {
	return queryType
}

// BuildQuery creates a new Query.
func BuildQuery(now time.Time) Query {
	return Query{Now: now.UTC()}
}

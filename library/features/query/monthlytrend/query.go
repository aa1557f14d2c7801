package monthlytrend

import (
	"time"
)

const (
	queryType = "MonthlyTrend"

	// DefaultMonths is the length of the trailing window, the current month included.
	DefaultMonths = 6
)

// Query asks for loan counts per calendar month for the trailing window ending at Now.
type Query struct {
	Now    time.Time
	Months int
}

// QueryType returns the type identifier for this query, used for observability and routing.
func (q Query) QueryType() string {
	return queryType
}

// BuildQuery creates a new Query over the default window.
func BuildQuery(now time.Time) Query {
	return Query{Now: now.UTC(), Months: DefaultMonths}
}

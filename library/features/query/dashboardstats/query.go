package dashboardstats

import (
	"time"
)

const (
	queryType = "DashboardStats"
)

// Query asks for the dashboard counters as of Now.
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

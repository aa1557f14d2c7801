package recentloans

const (
	queryType = "RecentLoans"

	// DefaultLimit is used when the query carries no positive limit.
	DefaultLimit = 5
)

// Query asks for the Limit most recent loans.
type Query struct {
	Limit int
}

// QueryType returns the type identifier for this query, used for observability and routing.
func (q Query) QueryType() string {
	return queryType
}

// BuildQuery creates a new Query. A non-positive limit means DefaultLimit.
func BuildQuery(limit int) Query {
	if limit <= 0 {
		limit = DefaultLimit
	}

	return Query{Limit: limit}
}

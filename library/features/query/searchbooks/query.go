package searchbooks

import (
	"strings"
)

const (
	queryType = "SearchBooks"
)

// Query filters the catalog. Empty fields do not filter.
type Query struct {
	Term      string
	Genre     string
	Available *bool
}

// QueryType returns the type identifier for this query, used for observability and routing.
func (q Query) QueryType() string {
	return queryType
}

// Option narrows a search.
type Option func(*Query)

// WithGenre keeps only books of the genre, compared case-insensitively.
func WithGenre(genre string) Option {
	return func(q *Query) {
		q.Genre = strings.TrimSpace(genre)
	}
}

// WithAvailability keeps only books whose availability equals available.
func WithAvailability(available bool) Option {
	return func(q *Query) {
		q.Available = &available
	}
}

// BuildQuery creates a new Query for term.
func BuildQuery(term string, opts ...Option) Query {
	q := Query{Term: strings.TrimSpace(term)}

	for _, opt := range opts {
		opt(&q)
	}

	return q
}

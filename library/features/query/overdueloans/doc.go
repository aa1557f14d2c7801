// Package overdueloans implements the Overdue Loans query.
//
// A loan is overdue while it is active and its due date lies before the query instant.
// The stored status is never consulted for "overdue".
package overdueloans

// Package recentloans implements the Recent Loans query.
package recentloans

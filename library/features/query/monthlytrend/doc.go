// Package monthlytrend implements the Monthly Loan Trend query.
package monthlytrend

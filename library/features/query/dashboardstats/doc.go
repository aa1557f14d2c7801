// Package dashboardstats implements the Dashboard Stats query.
//
// All counters are computed from one snapshot against the instant carried by the query.
// Ratios are rounded to one decimal.
package dashboardstats

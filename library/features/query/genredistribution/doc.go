// Package genredistribution implements the Genre Distribution query.
//
// It counts books per genre, in the order the genres first appear in the catalog.
package genredistribution

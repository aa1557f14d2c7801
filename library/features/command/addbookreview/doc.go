// Package addbookreview implements the Add Book Review use case.
//
// A review's rating is folded into the book's running average.
package addbookreview

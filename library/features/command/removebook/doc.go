// Package removebook implements the Delete Book use case.
//
// Loans that reference the book are left in place. The book is removed even while it is lent,
// which reproduces the catalog behavior the library has always had.
package removebook

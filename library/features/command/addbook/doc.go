// Package addbook implements the Add Book use case.
//
// A book is inserted into the catalog with the id carried by the command. It starts out available
// and its creation date is the date the command occurred. Title, author and ISBN are required.
package addbook

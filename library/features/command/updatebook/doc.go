// Package updatebook implements the Update Book use case.
//
// The stored book is replaced wholesale by the one in the command. The id and creation date can't change,
// and availability always follows the loans that reference the book.
package updatebook

// Package returnbook implements the Return Loan use case.
//
// Returning closes an active loan on the date the command occurred and makes the book available again.
package returnbook

// Package removeloan implements the Delete Loan use case.
//
// Deleting an active loan also makes its book available again.
package removeloan

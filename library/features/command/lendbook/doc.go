// Package lendbook implements the Lend Book use case.
//
// Lending creates an active loan and marks the book unavailable in the same commit, so the
// availability of a book always mirrors whether an active loan references it.
// The due date defaults to the loan date plus core.DefaultLoanDays.
package lendbook

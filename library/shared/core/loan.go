package core

import (
	"time"
)

// DefaultLoanDays is the loan period applied when no due date is given.
const DefaultLoanDays = 30

// LoanStatus is the persisted state of a loan.
// LoanStatusOverdue is accepted on decode but never written by an operation.
type LoanStatus string

const (
	LoanStatusActive   LoanStatus = "active"
	LoanStatusReturned LoanStatus = "returned"
	LoanStatusOverdue  LoanStatus = "overdue"
)

// Loan records a book lent to a user.
type Loan struct {
	ID         LoanIDString `json:"id"`
	BookID     BookIDString `json:"bookId"`
	UserID     UserIDString `json:"userId"`
	LoanDate   Date         `json:"loanDate"`
	DueDate    Date         `json:"dueDate"`
	ReturnDate *Date        `json:"returnDate,omitempty"`
	Status     LoanStatus   `json:"status"`
}

// EntityID implements Entity.
func (l Loan) EntityID() string {
	return l.ID
}

// IsActive reports whether the loan has not been returned.
func (l Loan) IsActive() bool {
	return l.Status == LoanStatusActive
}

// IsOverdue reports whether the loan is active and its due date lies before now.
func (l Loan) IsOverdue(now time.Time) bool {
	return l.IsActive() && l.DueDate.Time().Before(now)
}

// DaysOverdue returns the whole days between the due date and now, or 0 when not overdue.
func (l Loan) DaysOverdue(now time.Time) int {
	if !l.IsOverdue(now) {
		return 0
	}

	return int(now.Sub(l.DueDate.Time()).Hours() / 24)
}

// Returned returns a copy of the loan marked as returned on the given date.
func (l Loan) Returned(on Date) Loan {
	l.ReturnDate = &on
	l.Status = LoanStatusReturned

	return l
}

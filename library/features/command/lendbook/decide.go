package lendbook

import (
	"fmt"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

// Decide implements the business logic to lend a book.
//
// Business Rules:
//
//	GIVEN: An available book and an existing user
//	WHEN: LendBook command is received
//	THEN: an active loan is added and the book becomes unavailable
//	ERROR: not found if the book or the user does not exist
//	ERROR: book unavailable if the book is lent already
//	ERROR: invalid input if the due date lies before the loan date
//	IDEMPOTENCY: If a loan with this id exists, nothing changes
func Decide(state core.State, command Command) core.DecisionResult {
	if command.LoanID == "" {
		return core.ErrorDecision(fmt.Errorf("%w: loan id must not be empty", core.ErrInvalidInput))
	}

	if _, exists := state.FindLoan(command.LoanID); exists {
		return core.IdempotentDecision()
	}

	book, found := state.FindBook(command.BookID)
	if !found {
		return core.ErrorDecision(fmt.Errorf("%w: book %q", core.ErrNotFound, command.BookID))
	}

	user, found := state.FindUser(command.UserID)
	if !found {
		return core.ErrorDecision(fmt.Errorf("%w: user %q", core.ErrNotFound, command.UserID))
	}

	if !book.Available || state.HasActiveLoanForBook(book.ID) {
		return core.ErrorDecision(fmt.Errorf("%w: %q is lent", core.ErrBookUnavailable, book.Title))
	}

	loanDate := command.LoanDate
	if loanDate.IsZero() {
		loanDate = core.DateOf(command.OccurredAt)
	}

	dueDate := command.DueDate
	if dueDate.IsZero() {
		dueDate = loanDate.AddDays(core.DefaultLoanDays)
	}

	if dueDate.Before(loanDate) {
		return core.ErrorDecision(fmt.Errorf("%w: due date %s is before loan date %s", core.ErrInvalidInput, dueDate, loanDate))
	}

	loan := core.Loan{
		ID:       command.LoanID,
		BookID:   book.ID,
		UserID:   user.ID,
		LoanDate: loanDate,
		DueDate:  dueDate,
		Status:   core.LoanStatusActive,
	}

	return core.SuccessDecision(
		core.AddLoan{Loan: loan},
		core.UpdateBook{Book: book.WithAvailability(false)},
	).WithAudit(core.BuildAuditLog(
		core.AuditCreate,
		core.EntityLoan,
		loan.ID,
		"Created loan for book ID: "+book.ID,
		command.OccurredAt,
	))
}

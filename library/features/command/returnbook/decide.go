package returnbook

import (
	"fmt"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

// Decide implements the business logic to return a loan.
//
// Business Rules:
//
//	GIVEN: An active loan
//	WHEN: ReturnBook command is received
//	THEN: the loan gets returnDate = command date and status returned; the book becomes available
//	ERROR: not found if no loan has the id
//	ERROR: already returned if the loan is not active
func Decide(state core.State, command Command) core.DecisionResult {
	loan, found := state.FindLoan(command.LoanID)
	if !found {
		return core.ErrorDecision(fmt.Errorf("%w: loan %q", core.ErrNotFound, command.LoanID))
	}

	if !loan.IsActive() {
		return core.ErrorDecision(fmt.Errorf("%w: loan %q", core.ErrAlreadyReturned, loan.ID))
	}

	returned := loan.Returned(core.DateOf(command.OccurredAt))
	actions := []core.Action{core.UpdateLoan{Loan: returned}}

	// the book may have been deleted while lent
	if book, exists := state.FindBook(loan.BookID); exists {
		actions = append(actions, core.UpdateBook{Book: book.WithAvailability(true)})
	}

	return core.SuccessDecision(actions...).
		WithAudit(core.BuildAuditLog(
			core.AuditUpdate,
			core.EntityLoan,
			loan.ID,
			"Updated loan status: "+string(returned.Status),
			command.OccurredAt,
		))
}

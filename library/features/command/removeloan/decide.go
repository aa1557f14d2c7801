package removeloan

import (
	"fmt"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

// Decide implements the business logic to delete a loan.
//
// Business Rules:
//
//	GIVEN: An existing loan
//	WHEN: RemoveLoan command is received
//	THEN: the loan is removed; if it was active, its book becomes available
//	ERROR: not found if no loan has the id
func Decide(state core.State, command Command) core.DecisionResult {
	loan, found := state.FindLoan(command.LoanID)
	if !found {
		return core.ErrorDecision(fmt.Errorf("%w: loan %q", core.ErrNotFound, command.LoanID))
	}

	actions := []core.Action{core.DeleteLoan{LoanID: loan.ID}}

	if book, exists := state.FindBook(loan.BookID); exists && loan.IsActive() {
		actions = append(actions, core.UpdateBook{Book: book.WithAvailability(true)})
	}

	return core.SuccessDecision(actions...).
		WithAudit(core.BuildAuditLog(
			core.AuditDelete,
			core.EntityLoan,
			loan.ID,
			"Deleted loan for book ID: "+loan.BookID,
			command.OccurredAt,
		))
}

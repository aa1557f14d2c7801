package removebook

import (
	"fmt"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

// Decide implements the business logic to delete a book.
//
// Business Rules:
//
//	GIVEN: An existing book
//	WHEN: RemoveBook command is received
//	THEN: the book is removed; active loans referencing it are NOT checked
//	ERROR: not found if no book has the id
func Decide(state core.State, command Command) core.DecisionResult {
	book, found := state.FindBook(command.BookID)
	if !found {
		return core.ErrorDecision(fmt.Errorf("%w: book %q", core.ErrNotFound, command.BookID))
	}

	return core.SuccessDecision(core.DeleteBook{BookID: book.ID}).
		WithAudit(core.BuildAuditLog(
			core.AuditDelete,
			core.EntityBook,
			book.ID,
			"Deleted book: "+book.Title,
			command.OccurredAt,
		))
}

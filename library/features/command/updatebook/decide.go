package updatebook

import (
	"fmt"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

// Decide implements the business logic to update a book.
//
// Business Rules:
//
//	GIVEN: An existing book
//	WHEN: UpdateBook command is received
//	THEN: the book is replaced, keeping its id and createdAt
//	ERROR: not found if no book has the id
//	ERROR: invalid input if title, author or isbn is empty or the condition is unknown
func Decide(state core.State, command Command) core.DecisionResult {
	existing, found := state.FindBook(command.Book.ID)
	if !found {
		return core.ErrorDecision(fmt.Errorf("%w: book %q", core.ErrNotFound, command.Book.ID))
	}

	book := command.Book
	if book.Title == "" || book.Author == "" || book.ISBN == "" {
		return core.ErrorDecision(fmt.Errorf("%w: title, author and isbn must not be empty", core.ErrInvalidInput))
	}

	if !book.Condition.Valid() {
		return core.ErrorDecision(fmt.Errorf("%w: unknown condition %q", core.ErrInvalidInput, book.Condition))
	}

	book.CreatedAt = existing.CreatedAt
	book.Available = !state.HasActiveLoanForBook(book.ID)

	return core.SuccessDecision(core.UpdateBook{Book: book}).
		WithAudit(core.BuildAuditLog(
			core.AuditUpdate,
			core.EntityBook,
			book.ID,
			"Updated book: "+book.Title,
			command.OccurredAt,
		))
}

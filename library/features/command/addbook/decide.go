package addbook

import (
	"fmt"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

// Decide implements the business logic to add a book.
//
// Business Rules:
//
//	GIVEN: A book with a new id
//	WHEN: AddBook command is received
//	THEN: the book is inserted, available, created on the command date
//	ERROR: invalid input if title, author or isbn is empty, the condition is unknown or the rating is outside 0..5
//	IDEMPOTENCY: If a book with this id exists, nothing changes
func Decide(state core.State, command Command) core.DecisionResult {
	book := command.Book

	if err := validate(book); err != nil {
		return core.ErrorDecision(err)
	}

	if _, exists := state.FindBook(book.ID); exists {
		return core.IdempotentDecision()
	}

	book.CreatedAt = core.DateOf(command.OccurredAt)
	book.Available = true

	return core.SuccessDecision(core.AddBook{Book: book}).
		WithAudit(core.BuildAuditLog(
			core.AuditCreate,
			core.EntityBook,
			book.ID,
			"Added book: "+book.Title,
			command.OccurredAt,
		))
}

func validate(book core.Book) error {
	switch {
	case book.ID == "":
		return fmt.Errorf("%w: book id must not be empty", core.ErrInvalidInput)
	case book.Title == "":
		return fmt.Errorf("%w: title must not be empty", core.ErrInvalidInput)
	case book.Author == "":
		return fmt.Errorf("%w: author must not be empty", core.ErrInvalidInput)
	case book.ISBN == "":
		return fmt.Errorf("%w: isbn must not be empty", core.ErrInvalidInput)
	case !book.Condition.Valid():
		return fmt.Errorf("%w: unknown condition %q", core.ErrInvalidInput, book.Condition)
	case book.Rating < 0 || book.Rating > 5:
		return fmt.Errorf("%w: rating must be between 0 and 5", core.ErrInvalidInput)
	case book.TotalRatings < 0:
		return fmt.Errorf("%w: total ratings must not be negative", core.ErrInvalidInput)
	}

	return nil
}

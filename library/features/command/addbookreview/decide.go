package addbookreview

import (
	"fmt"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

// Decide implements the business logic to review a book.
//
// Business Rules:
//
//	GIVEN: An existing book and an existing user
//	WHEN: AddBookReview command is received
//	THEN: the review is stored and the book's rating average includes it
//	ERROR: not found for an unknown book or user, invalid input for a rating outside 1..5
//	IDEMPOTENCY: If a review with this id exists, nothing changes
func Decide(state core.State, command Command) core.DecisionResult {
	if command.ReviewID == "" {
		return core.ErrorDecision(fmt.Errorf("%w: review id must not be empty", core.ErrInvalidInput))
	}

	if command.Rating < core.MinReviewRating || command.Rating > core.MaxReviewRating {
		return core.ErrorDecision(fmt.Errorf(
			"%w: rating %d must be between %d and %d",
			core.ErrInvalidInput, command.Rating, core.MinReviewRating, core.MaxReviewRating,
		))
	}

	for _, review := range state.BookReviews {
		if review.ID == command.ReviewID {
			return core.IdempotentDecision()
		}
	}

	book, found := state.FindBook(command.BookID)
	if !found {
		return core.ErrorDecision(fmt.Errorf("%w: book %q", core.ErrNotFound, command.BookID))
	}

	if _, found := state.FindUser(command.UserID); !found {
		return core.ErrorDecision(fmt.Errorf("%w: user %q", core.ErrNotFound, command.UserID))
	}

	review := core.BookReview{
		ID:        command.ReviewID,
		BookID:    book.ID,
		UserID:    command.UserID,
		Rating:    command.Rating,
		Review:    command.Review,
		Timestamp: command.OccurredAt,
	}

	return core.SuccessDecision(
		core.AddBookReview{Review: review},
		core.UpdateBook{Book: book.WithRating(command.Rating)},
	).WithAudit(core.BuildAuditLog(
		core.AuditUpdate,
		core.EntityBook,
		book.ID,
		"Added review for book: "+book.Title,
		command.OccurredAt,
	))
}

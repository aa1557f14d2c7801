package reservebook

import (
	"fmt"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

// Decide implements the business logic to reserve a book.
//
// Business Rules:
//
//	GIVEN: An existing book and an existing user
//	WHEN: ReserveBook command is received
//	THEN: a pending reservation is added
//	ERROR: not found for an unknown book or user, already reserved if the user holds a pending reservation for the book
//	IDEMPOTENCY: If a reservation with this id exists, nothing changes
func Decide(state core.State, command Command) core.DecisionResult {
	if command.ReservationID == "" {
		return core.ErrorDecision(fmt.Errorf("%w: reservation id must not be empty", core.ErrInvalidInput))
	}

	if _, exists := state.FindReservation(command.ReservationID); exists {
		return core.IdempotentDecision()
	}

	if _, found := state.FindBook(command.BookID); !found {
		return core.ErrorDecision(fmt.Errorf("%w: book %q", core.ErrNotFound, command.BookID))
	}

	if _, found := state.FindUser(command.UserID); !found {
		return core.ErrorDecision(fmt.Errorf("%w: user %q", core.ErrNotFound, command.UserID))
	}

	for _, reservation := range state.BookReservations {
		if reservation.BookID == command.BookID &&
			reservation.UserID == command.UserID &&
			reservation.Status == core.ReservationPending {
			return core.ErrorDecision(fmt.Errorf(
				"%w: user %q already holds reservation %q for book %q",
				core.ErrAlreadyReserved, command.UserID, reservation.ID, command.BookID,
			))
		}
	}

	return core.SuccessDecision(core.AddBookReservation{Reservation: core.BookReservation{
		ID:        command.ReservationID,
		BookID:    command.BookID,
		UserID:    command.UserID,
		Timestamp: command.OccurredAt,
		Status:    core.ReservationPending,
	}})
}

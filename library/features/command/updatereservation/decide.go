package updatereservation

import (
	"fmt"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

// Decide implements the business logic to change a reservation's status.
//
// Business Rules:
//
//	GIVEN: An existing reservation
//	WHEN: UpdateReservation command is received
//	THEN: the reservation gets the new status
//	ERROR: not found for an unknown reservation, invalid input for an unknown status
//	IDEMPOTENCY: If the reservation already has the status, nothing changes
func Decide(state core.State, command Command) core.DecisionResult {
	if !command.Status.Valid() {
		return core.ErrorDecision(fmt.Errorf("%w: unknown reservation status %q", core.ErrInvalidInput, command.Status))
	}

	reservation, found := state.FindReservation(command.ReservationID)
	if !found {
		return core.ErrorDecision(fmt.Errorf("%w: reservation %q", core.ErrNotFound, command.ReservationID))
	}

	if reservation.Status == command.Status {
		return core.IdempotentDecision()
	}

	reservation.Status = command.Status

	return core.SuccessDecision(core.UpdateBookReservation{Reservation: reservation})
}

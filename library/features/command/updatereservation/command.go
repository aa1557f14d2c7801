package updatereservation

import (
	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

const (
	commandType = "UpdateReservation"
)

// Command represents the intent to fulfil or cancel a reservation.
type Command struct {
	ReservationID core.ReservationIDString
	Status        core.ReservationStatus
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(reservationID core.ReservationIDString, status core.ReservationStatus) Command {
	return Command{
		ReservationID: reservationID,
		Status:        status,
	}
}

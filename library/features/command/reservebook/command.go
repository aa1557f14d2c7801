package reservebook

import (
	"time"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

const (
	commandType = "ReserveBook"
)

// Command represents the intent of a user to reserve a book.
type Command struct {
	ReservationID core.ReservationIDString
	BookID        core.BookIDString
	UserID        core.UserIDString
	OccurredAt    core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	reservationID core.ReservationIDString,
	bookID core.BookIDString,
	userID core.UserIDString,
	occurredAt time.Time,
) Command {
	return Command{
		ReservationID: reservationID,
		BookID:        bookID,
		UserID:        userID,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}

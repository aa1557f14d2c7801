package addbookreview

import (
	"strings"
	"time"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

const (
	commandType = "AddBookReview"
)

// Command represents the intent of a user to rate and review a book.
type Command struct {
	ReviewID   core.ReviewIDString
	BookID     core.BookIDString
	UserID     core.UserIDString
	Rating     int
	Review     string
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	reviewID core.ReviewIDString,
	bookID core.BookIDString,
	userID core.UserIDString,
	rating int,
	review string,
	occurredAt time.Time,
) Command {
	return Command{
		ReviewID:   reviewID,
		BookID:     bookID,
		UserID:     userID,
		Rating:     rating,
		Review:     strings.TrimSpace(review),
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

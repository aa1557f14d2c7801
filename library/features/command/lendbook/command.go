package lendbook

import (
	"time"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

const (
	commandType = "LendBook"
)

// Command represents the intent to lend a book to a user.
// A zero LoanDate means the date the command occurred; a zero DueDate means the default loan period.
type Command struct {
	LoanID     core.LoanIDString
	BookID     core.BookIDString
	UserID     core.UserIDString
	LoanDate   core.Date
	DueDate    core.Date
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	loanID core.LoanIDString,
	bookID core.BookIDString,
	userID core.UserIDString,
	loanDate core.Date,
	dueDate core.Date,
	occurredAt time.Time,
) Command {
	return Command{
		LoanID:     loanID,
		BookID:     bookID,
		UserID:     userID,
		LoanDate:   loanDate,
		DueDate:    dueDate,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

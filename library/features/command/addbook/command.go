package addbook

import (
	"strings"
	"time"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

const (
	commandType = "AddBook"
)

// Command represents the intent to add a book to the catalog.
type Command struct {
	Book       core.Book
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command. Text fields are trimmed and tags are normalized;
// createdAt and availability are decided by Decide, not by the caller.
func BuildCommand(book core.Book, occurredAt time.Time) Command {
	book.Title = strings.TrimSpace(book.Title)
	book.Author = strings.TrimSpace(book.Author)
	book.ISBN = strings.TrimSpace(book.ISBN)
	book.Tags = core.NormalizeTags(book.Tags)

	if book.Condition == "" {
		book.Condition = core.ConditionGood
	}

	return Command{
		Book:       book,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

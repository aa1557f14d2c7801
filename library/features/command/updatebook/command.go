package updatebook

import (
	"strings"
	"time"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

const (
	commandType = "UpdateBook"
)

// Command represents the intent to replace a catalog entry.
type Command struct {
	Book       core.Book
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with trimmed text fields and normalized tags.
func BuildCommand(book core.Book, occurredAt time.Time) Command {
	book.Title = strings.TrimSpace(book.Title)
	book.Author = strings.TrimSpace(book.Author)
	book.ISBN = strings.TrimSpace(book.ISBN)
	book.Tags = core.NormalizeTags(book.Tags)

	return Command{
		Book:       book,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

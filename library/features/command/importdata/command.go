package importdata

import (
	"time"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

const (
	commandType = "ImportData"
)

// Command represents the intent to replace the library data with an exported document.
type Command struct {
	Document       []byte
	NotificationID core.NotificationIDString
	OccurredAt     core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(document []byte, notificationID core.NotificationIDString, occurredAt time.Time) Command {
	return Command{
		Document:       document,
		NotificationID: notificationID,
		OccurredAt:     core.ToOccurredAt(occurredAt),
	}
}

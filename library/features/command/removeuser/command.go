package removeuser

import (
	"time"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

const (
	commandType = "RemoveUser"
)

// Command represents the intent to delete a member.
type Command struct {
	UserID     core.UserIDString
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(userID core.UserIDString, occurredAt time.Time) Command {
	return Command{
		UserID:     userID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

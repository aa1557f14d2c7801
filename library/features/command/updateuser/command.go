package updateuser

import (
	"strings"
	"time"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

const (
	commandType = "UpdateUser"
)

// Command represents the intent to replace a member record.
type Command struct {
	User       core.User
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with trimmed fields.
func BuildCommand(user core.User, occurredAt time.Time) Command {
	user.Name = strings.TrimSpace(user.Name)
	user.Surname = strings.TrimSpace(user.Surname)
	user.Email = strings.TrimSpace(user.Email)
	user.CardNumber = strings.TrimSpace(user.CardNumber)

	return Command{
		User:       user,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

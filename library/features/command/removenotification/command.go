package removenotification

import (
	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

const (
	commandType = "RemoveNotification"
)

// Command represents the intent to delete a notification.
type Command struct {
	NotificationID core.NotificationIDString
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(notificationID core.NotificationIDString) Command {
	return Command{NotificationID: notificationID}
}

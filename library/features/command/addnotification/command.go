package addnotification

import (
	"time"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

const (
	commandType = "AddNotification"
)

// Command represents the intent to show a notification to the operator.
type Command struct {
	NotificationID   core.NotificationIDString
	NotificationType core.NotificationType
	Title            string
	Message          string
	OccurredAt       core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	notificationID core.NotificationIDString,
	notificationType core.NotificationType,
	title string,
	message string,
	occurredAt time.Time,
) Command {
	return Command{
		NotificationID:   notificationID,
		NotificationType: notificationType,
		Title:            title,
		Message:          message,
		OccurredAt:       core.ToOccurredAt(occurredAt),
	}
}

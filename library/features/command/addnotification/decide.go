package addnotification

import (
	"fmt"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

// Decide implements the business logic to add a notification.
//
// Business Rules:
//
//	WHEN: AddNotification command is received
//	THEN: an unread notification stamped with the command time is prepended
//	ERROR: invalid input for an unknown notification type or an empty id
//	IDEMPOTENCY: If a notification with this id exists, nothing changes
func Decide(state core.State, command Command) core.DecisionResult {
	if command.NotificationID == "" {
		return core.ErrorDecision(fmt.Errorf("%w: notification id must not be empty", core.ErrInvalidInput))
	}

	if !command.NotificationType.Valid() {
		return core.ErrorDecision(fmt.Errorf("%w: unknown notification type %q", core.ErrInvalidInput, command.NotificationType))
	}

	if _, exists := state.FindNotification(command.NotificationID); exists {
		return core.IdempotentDecision()
	}

	return core.SuccessDecision(core.AddNotification{Notification: core.Notification{
		ID:        command.NotificationID,
		Type:      command.NotificationType,
		Title:     command.Title,
		Message:   command.Message,
		Timestamp: command.OccurredAt,
		Read:      false,
	}})
}

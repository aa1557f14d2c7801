package marknotificationread

import (
	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

// Decide implements the business logic to mark a notification read.
//
// Business Rules:
//
//	GIVEN: An unread notification
//	WHEN: MarkNotificationRead command is received
//	THEN: the notification is marked read
//	IDEMPOTENCY: If the notification is absent or already read, nothing changes
func Decide(state core.State, command Command) core.DecisionResult {
	notification, found := state.FindNotification(command.NotificationID)
	if !found || notification.Read {
		return core.IdempotentDecision()
	}

	return core.SuccessDecision(core.MarkNotificationRead{NotificationID: notification.ID})
}

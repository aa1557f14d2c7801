package marknotificationsread

import (
	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

// Decide implements the business logic to mark all notifications read.
//
// Business Rules:
//
//	GIVEN: Some unread notifications
//	WHEN: MarkAllNotificationsRead command is received
//	THEN: every unread notification is marked read, in one commit
//	IDEMPOTENCY: If no notification is unread, nothing changes
func Decide(state core.State, _ Command) core.DecisionResult {
	var actions []core.Action

	for _, notification := range state.Notifications {
		if !notification.Read {
			actions = append(actions, core.MarkNotificationRead{NotificationID: notification.ID})
		}
	}

	if len(actions) == 0 {
		return core.IdempotentDecision()
	}

	return core.SuccessDecision(actions...)
}

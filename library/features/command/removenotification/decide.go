package removenotification

import (
	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

// Decide removes the notification, or does nothing when it is absent.
func Decide(state core.State, command Command) core.DecisionResult {
	if _, found := state.FindNotification(command.NotificationID); !found {
		return core.IdempotentDecision()
	}

	return core.SuccessDecision(core.DeleteNotification{NotificationID: command.NotificationID})
}

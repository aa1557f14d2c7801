package importdata

import (
	"fmt"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell/persistence"
)

const (
	successTitle   = "Import completed"
	successMessage = "Data imported successfully!"
)

// Decide implements the business logic to import library data.
//
// Business Rules:
//
//	WHEN: ImportData command is received with a valid document
//	THEN: books, users and loans are replaced and a success notification is added
//	ERROR: invalid import if the document is malformed or misses a collection
func Decide(_ core.State, command Command) core.DecisionResult {
	data, err := persistence.Import(command.Document)
	if err != nil {
		return core.ErrorDecision(err)
	}

	if command.NotificationID == "" {
		return core.ErrorDecision(fmt.Errorf("%w: notification id must not be empty", core.ErrInvalidInput))
	}

	return core.SuccessDecision(
		core.SetData{Data: data},
		core.AddNotification{Notification: core.Notification{
			ID:        command.NotificationID,
			Type:      core.NotificationSuccess,
			Title:     successTitle,
			Message:   successMessage,
			Timestamp: command.OccurredAt,
		}},
	)
}

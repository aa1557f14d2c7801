package removenotification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bibliotech-pro/bibliotech-go/library/features/command/removenotification"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

func Test_Decide_Success_WhenNotificationExists(t *testing.T) {
	// arrange
	state := core.NewState(core.SeedData())
	state.Notifications = []core.Notification{{ID: "n-1"}}

	// act
	result := removenotification.Decide(state, removenotification.BuildCommand("n-1"))

	// assert
	assert.Equal(t, []core.Action{core.DeleteNotification{NotificationID: "n-1"}}, result.Actions)
	assert.Nil(t, result.Audit)
}

func Test_Decide_Idempotent_WhenNotificationIsAbsent(t *testing.T) {
	result := removenotification.Decide(core.NewState(core.SeedData()), removenotification.BuildCommand("n-1"))

	assert.True(t, result.IsIdempotent())
}

package marknotificationsread_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibliotech-pro/bibliotech-go/library/features/command/marknotificationsread"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell"
)

func Test_Decide_MarksEveryUnreadNotification(t *testing.T) {
	// arrange
	state := givenStateWithNotifications(t)

	// act
	result := marknotificationsread.Decide(state, marknotificationsread.BuildCommand())
	next, err := core.ApplyAll(state, result.Actions...)

	// assert
	require.NoError(t, err)
	assert.Len(t, result.Actions, 2)
	assert.Nil(t, result.Audit)
	for _, notification := range next.Notifications {
		assert.True(t, notification.Read, notification.ID)
	}
}

func Test_Decide_Idempotent_WhenNothingIsUnread(t *testing.T) {
	testCases := []struct {
		name          string
		notifications []core.Notification
	}{
		{name: "no notifications"},
		{name: "all read", notifications: []core.Notification{{ID: "n-1", Read: true}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			state := core.NewState(core.SeedData())
			state.Notifications = tc.notifications

			result := marknotificationsread.Decide(state, marknotificationsread.BuildCommand())

			assert.True(t, result.IsIdempotent())
			assert.NoError(t, result.HasError())
		})
	}
}

func Test_Handle_CommitsOnce_WithoutPersisting(t *testing.T) {
	// arrange
	store := shell.NewStore(givenStateWithNotifications(t))
	workflow, err := shell.NewCommandWorkflow(store)
	require.NoError(t, err)
	handler := marknotificationsread.NewCommandHandler(workflow)

	// act
	result, err := handler.Handle(context.Background(), marknotificationsread.BuildCommand())

	// assert
	require.NoError(t, err)
	assert.Equal(t, shell.Version(1), result.Version)
	assert.False(t, result.Persisted)

	state, _ := store.Snapshot()
	for _, notification := range state.Notifications {
		assert.True(t, notification.Read, notification.ID)
	}
}

func givenStateWithNotifications(t *testing.T) core.State {
	t.Helper()

	state := core.NewState(core.SeedData())
	state.Notifications = []core.Notification{
		{ID: "n-1"},
		{ID: "n-2", Read: true},
		{ID: "n-3"},
	}

	return state
}

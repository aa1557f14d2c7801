package updatereservation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibliotech-pro/bibliotech-go/library/features/command/updatereservation"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

func Test_Decide_Success_WhenStatusChanges(t *testing.T) {
	// arrange
	state := givenPendingReservation(t)

	// act
	result := updatereservation.Decide(state, updatereservation.BuildCommand("res-1", core.ReservationFulfilled))
	next, err := core.ApplyAll(state, result.Actions...)

	// assert
	require.NoError(t, err)
	reservation, _ := next.FindReservation("res-1")
	assert.Equal(t, core.ReservationFulfilled, reservation.Status)
	assert.False(t, core.AnyTouchesLibraryData(result.Actions))
}

func Test_Decide_Idempotent_WhenStatusIsUnchanged(t *testing.T) {
	result := updatereservation.Decide(givenPendingReservation(t), updatereservation.BuildCommand("res-1", core.ReservationPending))

	assert.True(t, result.IsIdempotent())
}

func Test_Decide_Error_WhenStatusIsUnknown(t *testing.T) {
	result := updatereservation.Decide(givenPendingReservation(t), updatereservation.BuildCommand("res-1", "expired"))

	assert.ErrorIs(t, result.HasError(), core.ErrInvalidInput)
}

func Test_Decide_Error_WhenReservationIsUnknown(t *testing.T) {
	result := updatereservation.Decide(givenPendingReservation(t), updatereservation.BuildCommand("404", core.ReservationCancelled))

	assert.ErrorIs(t, result.HasError(), core.ErrNotFound)
}

func givenPendingReservation(t *testing.T) core.State {
	t.Helper()

	state := core.NewState(core.SeedData())
	state.BookReservations = []core.BookReservation{
		{ID: "res-1", BookID: "2", UserID: "2", Status: core.ReservationPending},
	}

	return state
}

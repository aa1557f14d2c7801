package updateuser_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibliotech-pro/bibliotech-go/library/features/command/updateuser"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

func Test_Decide_Success_KeepsRegistrationDateAndCardNumber(t *testing.T) {
	// arrange
	state := core.NewState(core.SeedData())
	user, _ := state.FindUser("1")
	registered := user.RegistrationDate
	user.Email = "mario@rossi.it"
	user.CardNumber = ""
	user.RegistrationDate = core.NewDate(2030, 1, 1)

	// act
	result := updateuser.Decide(state, updateuser.BuildCommand(user, time.Now()))

	// assert
	require.NoError(t, result.HasError())
	updated := result.Actions[0].(core.UpdateUser).User
	assert.Equal(t, "mario@rossi.it", updated.Email)
	assert.Equal(t, "LIB001", updated.CardNumber)
	assert.Equal(t, registered, updated.RegistrationDate)
	assert.Equal(t, "Updated user: Mario Rossi", result.Audit.Details)
}

func Test_Decide_Error_WhenCardNumberBelongsToAnotherUser(t *testing.T) {
	// arrange
	state := core.NewState(core.SeedData())
	user, _ := state.FindUser("1")
	user.CardNumber = "LIB002"

	// act
	result := updateuser.Decide(state, updateuser.BuildCommand(user, time.Now()))

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrDuplicateCardNumber)
}

func Test_Decide_Error_WhenUserDoesNotExist(t *testing.T) {
	user := core.User{ID: "404", Name: "A", Surname: "B", Email: "c"}

	result := updateuser.Decide(core.NewState(core.SeedData()), updateuser.BuildCommand(user, time.Now()))

	assert.ErrorIs(t, result.HasError(), core.ErrNotFound)
}

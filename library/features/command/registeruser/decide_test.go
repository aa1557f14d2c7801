package registeruser_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibliotech-pro/bibliotech-go/library/features/command/registeruser"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

func Test_Decide_Success_GeneratesAFreeCardNumber(t *testing.T) {
	// arrange
	state := core.NewState(core.SeedData())
	state.Users = append(state.Users, core.User{ID: "x", CardNumber: "LIB0042"})
	command := givenCommand(t, "")
	command.CardNumberStart = 42

	// act
	result := registeruser.Decide(state, command)

	// assert
	require.NoError(t, result.HasError())
	added := result.Actions[0].(core.AddUser).User
	assert.Equal(t, "LIB0043", added.CardNumber, "Should skip the taken number")
	assert.Equal(t, "2024-02-10", added.RegistrationDate.String())
	assert.Equal(t, "Added user: Luca Bianchi", result.Audit.Details)
	assert.Equal(t, core.EntityUser, result.Audit.EntityType)
}

func Test_Decide_Success_WrapsAroundWhenProbingPastTheLastNumber(t *testing.T) {
	// arrange
	state := core.NewState(core.SeedData())
	state.Users = append(state.Users, core.User{ID: "x", CardNumber: core.FormatCardNumber(core.MaxGeneratedCardNumber)})
	command := givenCommand(t, "")
	command.CardNumberStart = core.MaxGeneratedCardNumber

	// act
	result := registeruser.Decide(state, command)

	// assert
	require.NoError(t, result.HasError())
	assert.Equal(t, "LIB0001", result.Actions[0].(core.AddUser).User.CardNumber)
}

func Test_Decide_Success_KeepsASuppliedFreeCardNumber(t *testing.T) {
	result := registeruser.Decide(core.NewState(core.SeedData()), givenCommand(t, "LIB777"))

	require.NoError(t, result.HasError())
	assert.Equal(t, "LIB777", result.Actions[0].(core.AddUser).User.CardNumber)
}

func Test_Decide_Error_WhenSuppliedCardNumberIsTaken(t *testing.T) {
	result := registeruser.Decide(core.NewState(core.SeedData()), givenCommand(t, "LIB001"))

	assert.ErrorIs(t, result.HasError(), core.ErrDuplicateCardNumber)
}

func Test_Decide_Error_WhenEveryCardNumberIsTaken(t *testing.T) {
	// arrange
	state := core.NewState(core.LibraryData{})
	for n := core.MinGeneratedCardNumber; n <= core.MaxGeneratedCardNumber; n++ {
		state.Users = append(state.Users, core.User{ID: core.FormatCardNumber(n), CardNumber: core.FormatCardNumber(n)})
	}

	// act
	result := registeruser.Decide(state, givenCommand(t, ""))

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrCardNumbersExhausted)
}

func Test_Decide_Error_WhenEmailIsMissing(t *testing.T) {
	// arrange
	command := givenCommand(t, "")
	command.User.Email = ""

	// act
	result := registeruser.Decide(core.NewState(core.SeedData()), command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrInvalidInput)
}

func Test_Decide_Idempotent_WhenUserAlreadyExists(t *testing.T) {
	// arrange
	command := givenCommand(t, "")
	command.User.ID = "1"

	// act
	result := registeruser.Decide(core.NewState(core.SeedData()), command)

	// assert
	assert.True(t, result.IsIdempotent())
}

func givenCommand(t *testing.T, cardNumber string) registeruser.Command {
	t.Helper()

	return registeruser.BuildCommand(core.User{
		ID:         "u-3",
		Name:       " Luca",
		Surname:    "Bianchi ",
		Email:      "luca.bianchi@email.com",
		CardNumber: cardNumber,
	}, time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC))
}

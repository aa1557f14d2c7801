package registeruser

import (
	"fmt"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

// Decide implements the business logic to register a user.
//
// Business Rules:
//
//	GIVEN: A user with a new id
//	WHEN: RegisterUser command is received
//	THEN: the user is inserted, registered on the command date, with a unique card number
//	ERROR: invalid input if name, surname or email is empty
//	ERROR: duplicate card number if the supplied card number is taken
//	ERROR: card numbers exhausted if every generated number is taken
//	IDEMPOTENCY: If a user with this id exists, nothing changes
func Decide(state core.State, command Command) core.DecisionResult {
	user := command.User

	if user.ID == "" || user.Name == "" || user.Surname == "" || user.Email == "" {
		return core.ErrorDecision(fmt.Errorf("%w: id, name, surname and email must not be empty", core.ErrInvalidInput))
	}

	if _, exists := state.FindUser(user.ID); exists {
		return core.IdempotentDecision()
	}

	if user.CardNumber != "" {
		if state.CardNumberTaken(user.CardNumber) {
			return core.ErrorDecision(fmt.Errorf("%w: %s", core.ErrDuplicateCardNumber, user.CardNumber))
		}
	} else {
		cardNumber, ok := nextFreeCardNumber(state, command.CardNumberStart)
		if !ok {
			return core.ErrorDecision(core.ErrCardNumbersExhausted)
		}

		user.CardNumber = cardNumber
	}

	user.RegistrationDate = core.DateOf(command.OccurredAt)

	return core.SuccessDecision(core.AddUser{User: user}).
		WithAudit(core.BuildAuditLog(
			core.AuditCreate,
			core.EntityUser,
			user.ID,
			"Added user: "+user.FullName(),
			command.OccurredAt,
		))
}

// nextFreeCardNumber probes every generated number once, starting at start and wrapping around.
func nextFreeCardNumber(state core.State, start int) (string, bool) {
	span := core.MaxGeneratedCardNumber - core.MinGeneratedCardNumber + 1

	if start < core.MinGeneratedCardNumber || start > core.MaxGeneratedCardNumber {
		start = core.MinGeneratedCardNumber
	}

	for i := range span {
		n := core.MinGeneratedCardNumber + (start-core.MinGeneratedCardNumber+i)%span

		if cardNumber := core.FormatCardNumber(n); !state.CardNumberTaken(cardNumber) {
			return cardNumber, true
		}
	}

	return "", false
}

package updateuser

import (
	"fmt"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

// Decide implements the business logic to update a user.
//
// Business Rules:
//
//	GIVEN: An existing user
//	WHEN: UpdateUser command is received
//	THEN: the user is replaced, keeping id and registrationDate; an empty card number keeps the old one
//	ERROR: not found if no user has the id
//	ERROR: duplicate card number if another user holds the new card number
func Decide(state core.State, command Command) core.DecisionResult {
	existing, found := state.FindUser(command.User.ID)
	if !found {
		return core.ErrorDecision(fmt.Errorf("%w: user %q", core.ErrNotFound, command.User.ID))
	}

	user := command.User
	if user.Name == "" || user.Surname == "" || user.Email == "" {
		return core.ErrorDecision(fmt.Errorf("%w: name, surname and email must not be empty", core.ErrInvalidInput))
	}

	if user.CardNumber == "" {
		user.CardNumber = existing.CardNumber
	}

	if user.CardNumber != existing.CardNumber && state.CardNumberTaken(user.CardNumber) {
		return core.ErrorDecision(fmt.Errorf("%w: %s", core.ErrDuplicateCardNumber, user.CardNumber))
	}

	user.RegistrationDate = existing.RegistrationDate

	return core.SuccessDecision(core.UpdateUser{User: user}).
		WithAudit(core.BuildAuditLog(
			core.AuditUpdate,
			core.EntityUser,
			user.ID,
			"Updated user: "+user.FullName(),
			command.OccurredAt,
		))
}

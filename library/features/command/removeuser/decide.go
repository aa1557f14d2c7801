package removeuser

import (
	"fmt"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

// Decide implements the business logic to delete a user.
//
// Business Rules:
//
//	GIVEN: An existing user
//	WHEN: RemoveUser command is received
//	THEN: the user is removed
//	ERROR: not found if no user has the id
//	ERROR: has active loans if the user holds any active loan
func Decide(state core.State, command Command) core.DecisionResult {
	user, found := state.FindUser(command.UserID)
	if !found {
		return core.ErrorDecision(fmt.Errorf("%w: user %q", core.ErrNotFound, command.UserID))
	}

	if active := state.ActiveLoansOfUser(user.ID); active > 0 {
		return core.ErrorDecision(fmt.Errorf("%w: %s holds %d active loan(s)", core.ErrHasActiveLoans, user.FullName(), active))
	}

	return core.SuccessDecision(core.DeleteUser{UserID: user.ID}).
		WithAudit(core.BuildAuditLog(
			core.AuditDelete,
			core.EntityUser,
			user.ID,
			"Deleted user: "+user.FullName(),
			command.OccurredAt,
		))
}

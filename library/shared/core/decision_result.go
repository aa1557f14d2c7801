package core

// DecisionResult represents the outcome of a business decision in a Decide function.
// This enables type-safe, functional programming style decision modeling.
//
// IMPORTANT: DecisionResult should only be constructed using the provided factory methods:
// IdempotentDecision(), SuccessDecision(actions...), or ErrorDecision(err).
// Do not construct DecisionResult directly to ensure type safety.
type DecisionResult struct {
	Outcome string    // "idempotent", "success", or "error"
	Actions []Action  // empty for idempotent and error decisions
	Audit   *AuditLog // optional audit entry for successful decisions
	Err     error
}

const (
	idempotentOutcome = "idempotent"
	successOutcome    = "success"
	errorOutcome      = "error"
)

// IdempotentDecision creates a DecisionResult indicating no state change is needed.
func IdempotentDecision() DecisionResult {
	return DecisionResult{
		Outcome: idempotentOutcome,
	}
}

// SuccessDecision creates a DecisionResult indicating a state change with the actions to apply.
func SuccessDecision(actions ...Action) DecisionResult {
	return DecisionResult{
		Outcome: successOutcome,
		Actions: actions,
	}
}

// ErrorDecision creates a DecisionResult indicating a business rule violation. Nothing is applied.
func ErrorDecision(err error) DecisionResult {
	return DecisionResult{
		Outcome: errorOutcome,
		Err:     err,
	}
}

// WithAudit attaches an audit entry to a successful decision.
func (r DecisionResult) WithAudit(entry AuditLog) DecisionResult {
	if r.Outcome == successOutcome {
		r.Audit = &entry
	}

	return r
}

// HasActionsToApply returns true if the decision carries actions for the store.
func (r DecisionResult) HasActionsToApply() bool {
	return r.Outcome == successOutcome && len(r.Actions) > 0
}

// IsIdempotent returns true if nothing had to change.
func (r DecisionResult) IsIdempotent() bool {
	return r.Outcome == idempotentOutcome
}

// HasError returns the error if there is one, otherwise nil.
func (r DecisionResult) HasError() error {
	if r.Outcome == errorOutcome {
		return r.Err
	}

	return nil
}

// Package metering owns token-budget authority. The classifier consults it
// before every oracle call and reports actual cost after.
package metering

import "context"

// Decision is the budget oracle's answer for one prospective operation.
type Decision struct {
	Allowed   bool
	Remaining int64
	Limit     int64
}

// BudgetOracle is the single budget authority. Snapshot user facts are
// informational copies; this interface decides.
type BudgetOracle interface {
	// CheckBudget reports whether userID may spend estimate more tokens this
	// period.
	CheckBudget(ctx context.Context, userID string, estimate int64) (Decision, error)

	// RecordCost adds actual spend to the user's running total. Best effort:
	// callers must never fail a request because recording failed.
	RecordCost(ctx context.Context, userID string, actual int64) error
}

package metering

import (
	"context"
	"sync"
)

// Ledger is an in-memory BudgetOracle keeping a per-user running total for
// the current period. Per-user updates are a small critical section; slight
// over-counting under concurrent load from the same user is acceptable.
type Ledger struct {
	mu     sync.Mutex
	spent  map[string]int64
	limits map[string]int64 // per-plan overrides keyed by user id
	limit  int64            // default monthly limit
}

type LedgerConfig struct {
	// DefaultLimit applies to users without an explicit entry in Limits.
	DefaultLimit int64

	// Limits holds per-user monthly token limits.
	Limits map[string]int64
}

func NewLedger(cfg LedgerConfig) *Ledger {
	limits := make(map[string]int64, len(cfg.Limits))
	for k, v := range cfg.Limits {
		limits[k] = v
	}
	return &Ledger{
		spent:  make(map[string]int64),
		limits: limits,
		limit:  cfg.DefaultLimit,
	}
}

func (l *Ledger) limitFor(userID string) int64 {
	if v, ok := l.limits[userID]; ok {
		return v
	}
	return l.limit
}

func (l *Ledger) CheckBudget(ctx context.Context, userID string, estimate int64) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	limit := l.limitFor(userID)
	remaining := limit - l.spent[userID]
	if remaining < 0 {
		remaining = 0
	}

	return Decision{
		Allowed:   estimate <= remaining,
		Remaining: remaining,
		Limit:     limit,
	}, nil
}

func (l *Ledger) RecordCost(ctx context.Context, userID string, actual int64) error {
	if actual <= 0 {
		return nil
	}
	l.mu.Lock()
	l.spent[userID] += actual
	l.mu.Unlock()
	return nil
}

// Reset clears a user's running total, e.g. at period rollover.
func (l *Ledger) Reset(userID string) {
	l.mu.Lock()
	delete(l.spent, userID)
	l.mu.Unlock()
}

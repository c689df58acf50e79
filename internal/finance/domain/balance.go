package domain

import "time"

// Balance is the singleton running total across all incomes and expenses.
// It is maintained incrementally; the report aggregator never reads it.
type Balance struct {
	Amount    int64     `json:"amount"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BalanceRepository interface {
	// ApplyDelta adds delta (possibly negative) to the singleton row,
	// creating it seeded at zero when absent. The increment must happen
	// inside the database so concurrent mutations cannot lose updates.
	ApplyDelta(delta int64) (Balance, error)
	// Get returns the current ledger row, or a zero Balance when none exists.
	Get() (Balance, error)
	// Replace overwrites the ledger with an externally computed amount.
	Replace(amount int64) (Balance, error)
}

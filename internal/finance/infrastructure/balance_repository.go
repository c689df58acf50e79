package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/ulil-albab/MasjidManager/internal/finance/domain"
)

// BalanceRepository stores the singleton ledger row. Increments happen inside
// the database so concurrent transaction mutations cannot lose updates.
type BalanceRepository struct {
	db *sql.DB
}

func NewBalanceRepository(db *sql.DB) *BalanceRepository {
	return &BalanceRepository{db: db}
}

func (r *BalanceRepository) ApplyDelta(delta int64) (domain.Balance, error) {
	var balance domain.Balance
	err := r.db.QueryRow(
		`INSERT INTO balances (id, amount, updated_at) VALUES (1, $1, NOW())
		 ON CONFLICT (id) DO UPDATE SET amount = balances.amount + $1, updated_at = NOW()
		 RETURNING amount, updated_at`, delta,
	).Scan(&balance.Amount, &balance.UpdatedAt)
	return balance, err
}

func (r *BalanceRepository) Get() (domain.Balance, error) {
	var balance domain.Balance
	err := r.db.QueryRow(`SELECT amount, updated_at FROM balances WHERE id = 1`).
		Scan(&balance.Amount, &balance.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Balance{}, nil
	}
	return balance, err
}

func (r *BalanceRepository) Replace(amount int64) (domain.Balance, error) {
	var balance domain.Balance
	err := r.db.QueryRow(
		`INSERT INTO balances (id, amount, updated_at) VALUES (1, $1, NOW())
		 ON CONFLICT (id) DO UPDATE SET amount = $1, updated_at = NOW()
		 RETURNING amount, updated_at`, amount,
	).Scan(&balance.Amount, &balance.UpdatedAt)
	return balance, err
}

package application

import (
	"log"
	"time"

	"github.com/ulil-albab/MasjidManager/internal/finance/domain"
	financeErrors "github.com/ulil-albab/MasjidManager/internal/finance/errors"
)

// BalanceService owns the singleton ledger. ApplyDelta is the only mutation
// primitive; every transaction create/edit/delete is expressed as one call to
// it. BalanceBeforeDate deliberately bypasses the ledger and recomputes from
// the transaction store, so reports stay correct even when the ledger drifts.
type BalanceService struct {
	balances     domain.BalanceRepository
	transactions domain.TransactionRepository
}

func NewBalanceService(balances domain.BalanceRepository, transactions domain.TransactionRepository) *BalanceService {
	return &BalanceService{balances: balances, transactions: transactions}
}

// ApplyDelta credits (isCredit) or debits the ledger by amount and returns
// the post-update balance. The row is created seeded at zero when absent.
func (s *BalanceService) ApplyDelta(amount int64, isCredit bool) (int64, error) {
	if amount <= 0 {
		return 0, financeErrors.NewValidationError("Jumlah saldo harus lebih dari nol")
	}
	delta := amount
	if !isCredit {
		delta = -amount
	}
	balance, err := s.balances.ApplyDelta(delta)
	if err != nil {
		return 0, err
	}
	return balance.Amount, nil
}

// CurrentBalance reads the ledger singleton, zero when it was never created.
func (s *BalanceService) CurrentBalance() (int64, error) {
	balance, err := s.balances.Get()
	if err != nil {
		return 0, err
	}
	return balance.Amount, nil
}

// BalanceBeforeDate recomputes the signed total of all transactions dated
// strictly before cutoff from the transaction store.
func (s *BalanceService) BalanceBeforeDate(cutoff time.Time) (int64, error) {
	incomes, err := s.transactions.SumBefore(domain.TypeIncome, cutoff)
	if err != nil {
		return 0, err
	}
	expenses, err := s.transactions.SumBefore(domain.TypeExpense, cutoff)
	if err != nil {
		return 0, err
	}
	return incomes - expenses, nil
}

// Reconcile recomputes the all-time balance from the transaction store and
// overwrites the ledger. The store is authoritative; the ledger is a cache
// that can drift when a write bypasses the service layer.
func (s *BalanceService) Reconcile() error {
	// Far-future cutoff covers every stored transaction.
	computed, err := s.BalanceBeforeDate(time.Now().AddDate(100, 0, 0))
	if err != nil {
		return err
	}
	current, err := s.balances.Get()
	if err != nil {
		return err
	}
	if current.Amount == computed {
		return nil
	}
	log.Printf("Ledger drift detected: stored=%d computed=%d, correcting", current.Amount, computed)
	_, err = s.balances.Replace(computed)
	return err
}

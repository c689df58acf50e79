package application

import (
	"time"

	"github.com/google/uuid"
	"github.com/ulil-albab/MasjidManager/internal/finance/domain"
	financeErrors "github.com/ulil-albab/MasjidManager/internal/finance/errors"
)

// TransactionService implements income/expense CRUD and keeps the ledger in
// step with every mutation. Each operation maps to exactly one ApplyDelta
// call with the correctly signed amount; zero-delta edits skip the ledger.
type TransactionService struct {
	repo    domain.TransactionRepository
	balance *BalanceService
}

func NewTransactionService(repo domain.TransactionRepository, balance *BalanceService) *TransactionService {
	return &TransactionService{repo: repo, balance: balance}
}

func notFoundFor(kind string) error {
	if kind == domain.TypeIncome {
		return financeErrors.ErrIncomeNotFound
	}
	return financeErrors.ErrExpenseNotFound
}

// Create stores a new transaction and credits (income) or debits (expense)
// the ledger. It returns the stored record and the post-update balance.
func (s *TransactionService) Create(kind string, transaction *domain.Transaction) (int64, error) {
	transaction.ID = uuid.NewString()
	transaction.Type = kind
	transaction.ApplyDefaults(time.Now())
	if err := transaction.Validate(); err != nil {
		return 0, err
	}
	if err := s.repo.Save(kind, *transaction); err != nil {
		return 0, err
	}
	return s.balance.ApplyDelta(transaction.Amount, kind == domain.TypeIncome)
}

func (s *TransactionService) GetByID(kind, id string) (*domain.Transaction, error) {
	transaction, err := s.repo.FindByID(kind, id)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, notFoundFor(kind)
	}
	transaction.Type = kind
	return transaction, nil
}

// Update replaces name/amount/method/note/date in place and applies the
// amount difference to the ledger. An edit that keeps the amount unchanged
// must leave the ledger untouched.
func (s *TransactionService) Update(kind, id string, transaction *domain.Transaction) (*domain.Transaction, error) {
	original, err := s.GetByID(kind, id)
	if err != nil {
		return nil, err
	}

	transaction.ID = original.ID
	transaction.Type = kind
	transaction.ApplyDefaults(original.Date)
	if err := transaction.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(kind, *transaction); err != nil {
		return nil, err
	}

	difference := transaction.Amount - original.Amount
	if difference != 0 {
		isCredit := difference > 0
		if kind == domain.TypeExpense {
			// A bigger expense lowers the balance.
			isCredit = !isCredit
		}
		if _, err := s.balance.ApplyDelta(abs(difference), isCredit); err != nil {
			return nil, err
		}
	}
	return transaction, nil
}

// Delete removes the transaction and reverses its effect on the ledger:
// removing an income debits, removing an expense credits.
func (s *TransactionService) Delete(kind, id string) (*domain.Transaction, error) {
	deleted, err := s.GetByID(kind, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(kind, id); err != nil {
		return nil, err
	}
	if _, err := s.balance.ApplyDelta(deleted.Amount, kind == domain.TypeExpense); err != nil {
		return nil, err
	}
	return deleted, nil
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

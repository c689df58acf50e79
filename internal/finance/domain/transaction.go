package domain

import (
	"strings"
	"time"

	"github.com/ulil-albab/MasjidManager/internal/finance/errors"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"

	DefaultMethod = "cash"
)

type TransactionRepository interface {
	Save(kind string, transaction Transaction) error
	FindByID(kind, id string) (*Transaction, error)
	Update(kind string, transaction Transaction) error
	Delete(kind, id string) error
	FindInRange(kind string, start, end time.Time) ([]Transaction, error)
	SumBefore(kind string, cutoff time.Time) (int64, error)
}

// Transaction is a single dated income or expense entry. Amounts are whole
// rupiah; the accounting Date is independent of when the record was created.
type Transaction struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Amount int64     `json:"amount"`
	Method string    `json:"method"`
	Note   string    `json:"note"`
	Date   time.Time `json:"date"`
	Type   string    `json:"type,omitempty"`
}

func IsValidTransactionKind(kind string) bool {
	return kind == TypeIncome || kind == TypeExpense
}

func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.NewValidationError("Nama dan jumlah harus diisi dan valid")
	}
	if t.Amount <= 0 {
		return errors.NewValidationError("Nama dan jumlah harus diisi dan valid")
	}
	if len(t.Name) > 200 {
		return errors.NewValidationError("Nama transaksi maksimal 200 karakter")
	}
	return nil
}

// ApplyDefaults fills the optional fields the API allows callers to omit.
func (t *Transaction) ApplyDefaults(now time.Time) {
	if strings.TrimSpace(t.Method) == "" {
		t.Method = DefaultMethod
	}
	if t.Date.IsZero() {
		t.Date = now
	}
}

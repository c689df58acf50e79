package infrastructure

import (
	"sort"
	"sync"
	"time"

	"github.com/ulil-albab/MasjidManager/internal/finance/domain"
)

// MockTransactionRepository is an in-memory TransactionRepository for tests.
type MockTransactionRepository struct {
	mu      sync.Mutex
	records map[string]map[string]domain.Transaction
	FailErr error
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		records: map[string]map[string]domain.Transaction{
			domain.TypeIncome:  {},
			domain.TypeExpense: {},
		},
	}
}

func (m *MockTransactionRepository) Save(kind string, transaction domain.Transaction) error {
	if m.FailErr != nil {
		return m.FailErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[kind][transaction.ID] = transaction
	return nil
}

func (m *MockTransactionRepository) FindByID(kind, id string) (*domain.Transaction, error) {
	if m.FailErr != nil {
		return nil, m.FailErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	transaction, ok := m.records[kind][id]
	if !ok {
		return nil, nil
	}
	return &transaction, nil
}

func (m *MockTransactionRepository) Update(kind string, transaction domain.Transaction) error {
	if m.FailErr != nil {
		return m.FailErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[kind][transaction.ID] = transaction
	return nil
}

func (m *MockTransactionRepository) Delete(kind, id string) error {
	if m.FailErr != nil {
		return m.FailErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records[kind], id)
	return nil
}

func (m *MockTransactionRepository) FindInRange(kind string, start, end time.Time) ([]domain.Transaction, error) {
	if m.FailErr != nil {
		return nil, m.FailErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var transactions []domain.Transaction
	for _, transaction := range m.records[kind] {
		if !transaction.Date.Before(start) && !transaction.Date.After(end) {
			transactions = append(transactions, transaction)
		}
	}
	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].Date.Before(transactions[j].Date)
	})
	return transactions, nil
}

func (m *MockTransactionRepository) SumBefore(kind string, cutoff time.Time) (int64, error) {
	if m.FailErr != nil {
		return 0, m.FailErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var total int64
	for _, transaction := range m.records[kind] {
		if transaction.Date.Before(cutoff) {
			total += transaction.Amount
		}
	}
	return total, nil
}

package infrastructure

import (
	"sync"
	"time"

	"github.com/ulil-albab/MasjidManager/internal/finance/domain"
)

// MockBalanceRepository is an in-memory BalanceRepository for tests.
type MockBalanceRepository struct {
	mu      sync.Mutex
	balance domain.Balance
	FailErr error
}

func NewMockBalanceRepository() *MockBalanceRepository {
	return &MockBalanceRepository{}
}

func (m *MockBalanceRepository) ApplyDelta(delta int64) (domain.Balance, error) {
	if m.FailErr != nil {
		return domain.Balance{}, m.FailErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balance.Amount += delta
	m.balance.UpdatedAt = time.Now()
	return m.balance, nil
}

func (m *MockBalanceRepository) Get() (domain.Balance, error) {
	if m.FailErr != nil {
		return domain.Balance{}, m.FailErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balance, nil
}

func (m *MockBalanceRepository) Replace(amount int64) (domain.Balance, error) {
	if m.FailErr != nil {
		return domain.Balance{}, m.FailErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balance.Amount = amount
	m.balance.UpdatedAt = time.Now()
	return m.balance, nil
}

package interfaces

import (
	"github.com/ulil-albab/MasjidManager/internal/finance/domain"
)

type MockTransactionService struct {
	Balance  int64
	Err      error
	LastKind string
	Deleted  *domain.Transaction
}

func (m *MockTransactionService) Create(kind string, transaction *domain.Transaction) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	m.LastKind = kind
	transaction.ID = "00000000-0000-0000-0000-000000000001"
	transaction.Type = kind
	return m.Balance, nil
}

func (m *MockTransactionService) Update(kind, id string, transaction *domain.Transaction) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.LastKind = kind
	transaction.ID = id
	transaction.Type = kind
	return transaction, nil
}

func (m *MockTransactionService) Delete(kind, id string) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.LastKind = kind
	if m.Deleted != nil {
		return m.Deleted, nil
	}
	return &domain.Transaction{ID: id, Type: kind}, nil
}

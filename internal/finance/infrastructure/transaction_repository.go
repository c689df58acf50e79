package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ulil-albab/MasjidManager/internal/finance/domain"
)

// TransactionRepository persists incomes and expenses. The two kinds share a
// shape but live in separate tables, mirroring the API split.
type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func tableFor(kind string) string {
	if kind == domain.TypeIncome {
		return "incomes"
	}
	return "expenses"
}

func (r *TransactionRepository) Save(kind string, transaction domain.Transaction) error {
	query := fmt.Sprintf(
		`INSERT INTO %s (id, name, amount, method, note, date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())`, tableFor(kind))
	_, err := r.db.Exec(query,
		transaction.ID, transaction.Name, transaction.Amount,
		transaction.Method, transaction.Note, transaction.Date,
	)
	return err
}

func (r *TransactionRepository) FindByID(kind, id string) (*domain.Transaction, error) {
	query := fmt.Sprintf(
		`SELECT id, name, amount, method, note, date FROM %s WHERE id = $1`, tableFor(kind))

	var transaction domain.Transaction
	err := r.db.QueryRow(query, id).Scan(
		&transaction.ID, &transaction.Name, &transaction.Amount,
		&transaction.Method, &transaction.Note, &transaction.Date,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &transaction, nil
}

func (r *TransactionRepository) Update(kind string, transaction domain.Transaction) error {
	query := fmt.Sprintf(
		`UPDATE %s SET name = $2, amount = $3, method = $4, note = $5, date = $6, updated_at = NOW()
		 WHERE id = $1`, tableFor(kind))
	_, err := r.db.Exec(query,
		transaction.ID, transaction.Name, transaction.Amount,
		transaction.Method, transaction.Note, transaction.Date,
	)
	return err
}

func (r *TransactionRepository) Delete(kind, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, tableFor(kind))
	_, err := r.db.Exec(query, id)
	return err
}

func (r *TransactionRepository) FindInRange(kind string, start, end time.Time) ([]domain.Transaction, error) {
	query := fmt.Sprintf(
		`SELECT id, name, amount, method, note, date FROM %s
		 WHERE date >= $1 AND date <= $2 ORDER BY date ASC`, tableFor(kind))
	rows, err := r.db.Query(query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		if err := rows.Scan(
			&transaction.ID, &transaction.Name, &transaction.Amount,
			&transaction.Method, &transaction.Note, &transaction.Date,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) SumBefore(kind string, cutoff time.Time) (int64, error) {
	query := fmt.Sprintf(`SELECT COALESCE(SUM(amount), 0) FROM %s WHERE date < $1`, tableFor(kind))
	var total int64
	err := r.db.QueryRow(query, cutoff).Scan(&total)
	return total, err
}

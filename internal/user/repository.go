package user

import (
	"database/sql"
	"errors"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(user User) error {
	_, err := r.db.Exec(
		`INSERT INTO users (id, name, email, password_hash, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, NOW())`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role,
	)
	return err
}

func (r *PostgresRepository) FindByEmail(email string) (*User, error) {
	return r.findOne(`SELECT id, name, email, password_hash, role, created_at
		 FROM users WHERE email = $1`, email)
}

func (r *PostgresRepository) FindByID(id string) (*User, error) {
	return r.findOne(`SELECT id, name, email, password_hash, role, created_at
		 FROM users WHERE id = $1`, id)
}

func (r *PostgresRepository) findOne(query, arg string) (*User, error) {
	var user User
	err := r.db.QueryRow(query, arg).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) Count() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&total)
	return total, err
}

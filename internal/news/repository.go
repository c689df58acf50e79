package news

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

func (r *PostgresRepository) Save(news News) error {
	_, err := r.db.Exec(
		`INSERT INTO news (id, title, content, author, image, image_file, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())`,
		news.ID, news.Title, news.Content, news.Author, news.Image, news.ImageFile,
	)
	return err
}

func (r *PostgresRepository) FindByID(id string) (*News, error) {
	var news News
	err := r.db.QueryRow(
		`SELECT id, title, content, author, image, image_file, created_at, updated_at
		 FROM news WHERE id = $1`, id,
	).Scan(&news.ID, &news.Title, &news.Content, &news.Author,
		&news.Image, &news.ImageFile, &news.CreatedAt, &news.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &news, nil
}

func (r *PostgresRepository) Update(news News) error {
	_, err := r.db.Exec(
		`UPDATE news SET title = $2, content = $3, author = $4, image = $5, image_file = $6, updated_at = NOW()
		 WHERE id = $1`,
		news.ID, news.Title, news.Content, news.Author, news.Image, news.ImageFile,
	)
	return err
}

func (r *PostgresRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM news WHERE id = $1`, id)
	return err
}

func (r *PostgresRepository) List(titleFilter string, limit, offset int) ([]News, error) {
	rows, err := r.db.Query(
		`SELECT id, title, content, author, image, image_file, created_at, updated_at
		 FROM news WHERE ($1 = '' OR title ILIKE '%' || $1 || '%')
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		titleFilter, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []News
	for rows.Next() {
		var news News
		if err := rows.Scan(&news.ID, &news.Title, &news.Content, &news.Author,
			&news.Image, &news.ImageFile, &news.CreatedAt, &news.UpdatedAt); err != nil {
			return nil, err
		}
		articles = append(articles, news)
	}
	return articles, rows.Err()
}

func (r *PostgresRepository) Count(titleFilter string) (int, error) {
	var total int
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM news WHERE ($1 = '' OR title ILIKE '%' || $1 || '%')`,
		titleFilter,
	).Scan(&total)
	return total, err
}

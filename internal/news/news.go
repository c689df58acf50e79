package news

import (
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("Berita tidak ditemukan")
	ErrFieldsRequired = errors.New("Title, content, dan author wajib diisi")
	ErrImageRequired  = errors.New("Gambar wajib diupload untuk berita baru")
)

type News struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Image     string    `json:"image"`
	ImageFile string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Repository interface {
	Save(news News) error
	FindByID(id string) (*News, error)
	Update(news News) error
	Delete(id string) error
	List(titleFilter string, limit, offset int) ([]News, error)
	Count(titleFilter string) (int, error)
}

// ImageStore persists uploaded article images and serves them back by URL.
type ImageStore interface {
	Save(originalName string, data []byte) (url, storedName string, err error)
	Delete(storedName string) error
}

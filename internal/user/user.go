package user

import (
	"errors"
	"time"
)

const (
	RoleJamaah   = "jamaah"
	RolePengurus = "pengurus"
)

var (
	ErrFieldsRequired      = errors.New("Nama, email, dan password harus diisi")
	ErrInvalidEmail        = errors.New("Email yang kamu input bukan format email")
	ErrPasswordTooShort    = errors.New("Password minimal 6 karakter")
	ErrEmailTaken          = errors.New("Email sudah digunakan")
	ErrCredentialsRequired = errors.New("Email dan password harus diisi")
	ErrInvalidCredentials  = errors.New("Email atau password yang anda masukkan salah")
	ErrUserNotFound        = errors.New("User tidak ditemukan")
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Repository interface {
	Save(user User) error
	FindByEmail(email string) (*User, error)
	FindByID(id string) (*User, error)
	Count() (int, error)
}

package user

import (
	"github.com/badoux/checkmail"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ulil-albab/MasjidManager/internal/auth"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates an account. The very first account becomes the pengurus
// (administrator); everyone after that registers as jamaah.
func (s *Service) Register(name, email, password string) (*User, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrFieldsRequired
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		return nil, ErrInvalidEmail
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}

	existing, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	total, err := s.repo.Count()
	if err != nil {
		return nil, err
	}
	role := RoleJamaah
	if total == 0 {
		role = RolePengurus
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.repo.Save(account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *Service) Login(email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, ErrCredentialsRequired
	}

	account, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

func (s *Service) GetByID(id string) (*User, error) {
	account, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrUserNotFound
	}
	return account, nil
}

// IdentityByID lets the auth middleware resolve session tokens to accounts.
func (s *Service) IdentityByID(id string) (auth.Identity, error) {
	account, err := s.GetByID(id)
	if err != nil {
		return auth.Identity{}, err
	}
	return auth.Identity{ID: account.ID, Role: account.Role}, nil
}

package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	users   map[string]User
	failErr error
}

func newMockRepository() *mockRepository {
	return &mockRepository{users: map[string]User{}}
}

func (m *mockRepository) Save(user User) error {
	if m.failErr != nil {
		return m.failErr
	}
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *mockRepository) FindByEmail(email string) (*User, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	for _, user := range m.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (m *mockRepository) FindByID(id string) (*User, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (m *mockRepository) Count() (int, error) {
	if m.failErr != nil {
		return 0, m.failErr
	}
	return len(m.users), nil
}

func TestRegister_FirstUserBecomesPengurus(t *testing.T) {
	service := NewService(newMockRepository())

	first, err := service.Register("Zulfikar", "zulfikar@unm.ac.id", "rahasia123")
	require.NoError(t, err)
	assert.Equal(t, RolePengurus, first.Role)
	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, "rahasia123", first.PasswordHash)

	second, err := service.Register("Andi", "andi@unm.ac.id", "rahasia123")
	require.NoError(t, err)
	assert.Equal(t, RoleJamaah, second.Role)
}

func TestRegister_Validation(t *testing.T) {
	service := NewService(newMockRepository())

	_, err := service.Register("", "a@b.com", "rahasia123")
	assert.ErrorIs(t, err, ErrFieldsRequired)

	_, err = service.Register("Andi", "bukan-email", "rahasia123")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = service.Register("Andi", "a@b.com", "12345")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	service := NewService(newMockRepository())

	_, err := service.Register("Andi", "andi@unm.ac.id", "rahasia123")
	require.NoError(t, err)

	_, err = service.Register("Andi Kedua", "andi@unm.ac.id", "rahasia456")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	service := NewService(newMockRepository())
	registered, err := service.Register("Andi", "andi@unm.ac.id", "rahasia123")
	require.NoError(t, err)

	account, err := service.Login("andi@unm.ac.id", "rahasia123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, account.ID)

	_, err = service.Login("andi@unm.ac.id", "salah")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Login("tidak@ada.com", "rahasia123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Login("", "")
	assert.ErrorIs(t, err, ErrCredentialsRequired)
}

func TestIdentityByID(t *testing.T) {
	service := NewService(newMockRepository())
	registered, err := service.Register("Andi", "andi@unm.ac.id", "rahasia123")
	require.NoError(t, err)

	identity, err := service.IdentityByID(registered.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, identity.ID)
	assert.Equal(t, RolePengurus, identity.Role)

	_, err = service.IdentityByID("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

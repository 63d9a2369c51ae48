package service

import (
	"testing"

	"go-pos-kasir/internal/model"
	"go-pos-kasir/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, email, password string, active bool) *model.User {
	t.Helper()
	user := &model.User{Email: email, FullName: "Kasir", IsActive: active}
	require.NoError(t, user.SetPassword(password))
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))
	seedUser(t, db, "kasir@toko.id", "rahasia123", true)

	resp, err := svc.Login("kasir@toko.id", "rahasia123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "kasir@toko.id", resp.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))
	seedUser(t, db, "kasir@toko.id", "rahasia123", true)

	_, err := svc.Login("kasir@toko.id", "salah")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))

	_, err := svc.Login("tidak-ada@toko.id", "apapun")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// Akun yang dibuat nonaktif harus tersimpan nonaktif; kolom ber-default
// di database akan menimpa nilai false saat insert.
func TestInactiveFlagPersists(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "nonaktif@toko.id", "rahasia123", false)

	var stored model.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.False(t, stored.IsActive)
}

func TestLoginInactiveUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))
	seedUser(t, db, "nonaktif@toko.id", "rahasia123", false)

	_, err := svc.Login("nonaktif@toko.id", "rahasia123")
	assert.ErrorIs(t, err, ErrUserInactive)
}

package service_test

import (
	"testing"

	"wearspace-api/internal/apperr"
	"wearspace-api/internal/model"
	"wearspace-api/internal/repository"
	"wearspace-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewAuthService(repository.NewUserRepo(db))

	user, err := svc.Register(&service.RegisterRequest{
		Email:    "admin@wearspace.com",
		Password: "adminpass",
		Phone:    "081234567890",
	})
	require.NoError(t, err)

	assert.Equal(t, "admin@wearspace.com", user.Email)
	assert.NotEqual(t, "adminpass", user.HashedPassword, "password must be stored hashed")
	assert.True(t, user.CheckPassword("adminpass"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestRegisterMissingFields(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewAuthService(repository.NewUserRepo(db))

	_, err := svc.Register(&service.RegisterRequest{})
	assert.True(t, apperr.Is(err, apperr.CodeMissingField))
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "password")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewAuthService(repository.NewUserRepo(db))

	_, err := svc.Register(&service.RegisterRequest{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)

	_, err = svc.Register(&service.RegisterRequest{Email: "a@b.com", Password: "y"})
	assert.True(t, apperr.Is(err, apperr.CodeDuplicate))
}

func TestRegisterUniqueIndexBackstop(t *testing.T) {
	db := newTestDB(t)

	seedUser(t, db, "a@b.com")

	// A racing insert that slipped past the pre-check hits the unique
	// index and comes back as a translated duplicate error
	dup := &model.User{Email: "a@b.com"}
	require.NoError(t, dup.SetPassword("x"))
	err := repository.NewUserRepo(db).Create(dup)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestLoginAndResolveIdentity(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewAuthService(repository.NewUserRepo(db))

	registered, err := svc.Register(&service.RegisterRequest{
		Email:    "customer@wearspace.com",
		Password: "customerpass",
	})
	require.NoError(t, err)

	result, err := svc.Login("customer@wearspace.com", "customerpass")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, registered.ID, result.User.ID)

	resolved, err := svc.ResolveIdentity(result.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, resolved.ID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewAuthService(repository.NewUserRepo(db))

	_, err := svc.Register(&service.RegisterRequest{Email: "a@b.com", Password: "right"})
	require.NoError(t, err)

	// Wrong password and unknown email produce the same error
	_, err = svc.Login("a@b.com", "wrong")
	assert.True(t, apperr.Is(err, apperr.CodeInvalidCredentials))

	_, err = svc.Login("nobody@b.com", "right")
	assert.True(t, apperr.Is(err, apperr.CodeInvalidCredentials))
}

func TestResolveIdentityGarbageToken(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewAuthService(repository.NewUserRepo(db))

	_, err := svc.ResolveIdentity("not-a-token")
	assert.Error(t, err)
}

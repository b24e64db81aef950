package usecases_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"luyona.backend/internal/domain/entities"
	domainerrors "luyona.backend/internal/domain/errors"
	"luyona.backend/internal/usecases"
	"luyona.backend/pkg/crypto"
	"luyona.backend/pkg/jwt"
)

var testAdminEmails = []string{"admin@luyona.com"}

func newAuthUsecase(repo *MockUserRepository) *usecases.AuthUsecase {
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	return usecases.NewAuthUsecase(repo, jwtService, testAdminEmails)
}

func TestAuthUsecase_Register(t *testing.T) {
	repo := new(MockUserRepository)
	uc := newAuthUsecase(repo)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "new@mail.com").Return(nil, domainerrors.ErrNotFound)
	repo.On("Create", ctx, mock.AnythingOfType("*entities.User")).Run(func(args mock.Arguments) {
		args.Get(1).(*entities.User).ID = uuid.New()
	}).Return(nil)

	user, token, err := uc.Register(ctx, &entities.RegisterInput{Email: "new@mail.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "new@mail.com", user.Email)
	assert.True(t, crypto.CheckPassword("secret123", user.PasswordHash), "password stored hashed")
	repo.AssertExpectations(t)
}

func TestAuthUsecase_RegisterDuplicateEmail(t *testing.T) {
	repo := new(MockUserRepository)
	uc := newAuthUsecase(repo)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "taken@mail.com").Return(&entities.User{Email: "taken@mail.com"}, nil)

	_, _, err := uc.Register(ctx, &entities.RegisterInput{Email: "taken@mail.com", Password: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
	repo.AssertNotCalled(t, "Create")
}

func TestAuthUsecase_RegisterLookupError(t *testing.T) {
	repo := new(MockUserRepository)
	uc := newAuthUsecase(repo)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "new@mail.com").Return(nil, errors.New("db down"))

	_, _, err := uc.Register(ctx, &entities.RegisterInput{Email: "new@mail.com", Password: "x"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestAuthUsecase_Login(t *testing.T) {
	repo := new(MockUserRepository)
	uc := newAuthUsecase(repo)
	ctx := context.Background()

	hash, err := crypto.HashPassword("secret123")
	require.NoError(t, err)
	stored := &entities.User{ID: uuid.New(), Email: "a@mail.com", PasswordHash: hash}
	repo.On("GetByEmail", ctx, "a@mail.com").Return(stored, nil)

	user, token, err := uc.Login(ctx, &entities.LoginInput{Email: "a@mail.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, stored.ID, user.ID)
}

func TestAuthUsecase_LoginWrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	repo := new(MockUserRepository)
	uc := newAuthUsecase(repo)
	ctx := context.Background()

	hash, err := crypto.HashPassword("secret123")
	require.NoError(t, err)
	repo.On("GetByEmail", ctx, "a@mail.com").Return(&entities.User{PasswordHash: hash}, nil)
	repo.On("GetByEmail", ctx, "nobody@mail.com").Return(nil, domainerrors.ErrNotFound)

	_, _, errWrongPass := uc.Login(ctx, &entities.LoginInput{Email: "a@mail.com", Password: "wrong"})
	_, _, errNoUser := uc.Login(ctx, &entities.LoginInput{Email: "nobody@mail.com", Password: "secret123"})

	assert.ErrorIs(t, errWrongPass, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, domainerrors.ErrInvalidCredentials)
}

func TestAuthUsecase_AdminLogin(t *testing.T) {
	repo := new(MockUserRepository)
	uc := newAuthUsecase(repo)
	ctx := context.Background()

	hash, err := crypto.HashPassword("secret123")
	require.NoError(t, err)
	repo.On("GetByEmail", ctx, "admin@luyona.com").Return(&entities.User{ID: uuid.New(), Email: "admin@luyona.com", PasswordHash: hash}, nil)

	_, token, err := uc.AdminLogin(ctx, &entities.LoginInput{Email: "admin@luyona.com", Password: "secret123"})
	require.NoError(t, err)

	claims, err := jwt.NewJWTService("test-secret", time.Hour).ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
}

func TestAuthUsecase_AdminLoginOutsideAllowList(t *testing.T) {
	repo := new(MockUserRepository)
	uc := newAuthUsecase(repo)
	ctx := context.Background()

	_, _, err := uc.AdminLogin(ctx, &entities.LoginInput{Email: "user@mail.com", Password: "secret123"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	repo.AssertNotCalled(t, "GetByEmail")
}

func TestAuthUsecase_DeleteAccount(t *testing.T) {
	repo := new(MockUserRepository)
	uc := newAuthUsecase(repo)
	ctx := context.Background()
	userID := uuid.New()

	repo.On("Delete", ctx, userID).Return(nil)
	assert.NoError(t, uc.DeleteAccount(ctx, userID))
	repo.AssertExpectations(t)
}

func TestAuthUsecase_IsAdminEmail(t *testing.T) {
	uc := newAuthUsecase(new(MockUserRepository))
	assert.True(t, uc.IsAdminEmail("admin@luyona.com"))
	assert.False(t, uc.IsAdminEmail("someone@luyona.com"))
}

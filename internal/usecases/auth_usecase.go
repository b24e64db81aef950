package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"luyona.backend/internal/domain/entities"
	domainerrors "luyona.backend/internal/domain/errors"
	"luyona.backend/internal/domain/repositories"
	"luyona.backend/pkg/crypto"
	"luyona.backend/pkg/jwt"
)

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo    repositories.UserRepository
	jwtService  *jwt.JWTService
	adminEmails []string
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService, adminEmails []string) *AuthUsecase {
	return &AuthUsecase{
		userRepo:    userRepo,
		jwtService:  jwtService,
		adminEmails: adminEmails,
	}
}

// Register creates an account from email and password alone; the profile is
// filled in later through onboarding. Returns the created user and its token.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, string, error) {
	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, "", domainerrors.ErrAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, "", err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	user := &entities.User{
		Email:        input.Email,
		PasswordHash: passwordHash,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.jwtService.GenerateToken(user.ID, user.Email, false)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates a user and returns a bearer token. An unknown email and
// a wrong password are indistinguishable to the caller.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.User, string, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, "", domainerrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, "", domainerrors.ErrInvalidCredentials
	}

	token, err := u.jwtService.GenerateToken(user.ID, user.Email, false)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// AdminLogin authenticates a member of the admin allow-list. An email outside
// the list gets the same invalid-credentials answer as a wrong password.
func (u *AuthUsecase) AdminLogin(ctx context.Context, input *entities.LoginInput) (*entities.User, string, error) {
	if !u.IsAdminEmail(input.Email) {
		return nil, "", domainerrors.ErrInvalidCredentials
	}

	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, "", domainerrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, "", domainerrors.ErrInvalidCredentials
	}

	token, err := u.jwtService.GenerateToken(user.ID, user.Email, true)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// IsAdminEmail reports membership in the configured admin allow-list
func (u *AuthUsecase) IsAdminEmail(email string) bool {
	for _, admin := range u.adminEmails {
		if admin == email {
			return true
		}
	}
	return false
}

// DeleteAccount hard-deletes the user row. Deleting an account that is
// already gone succeeds.
func (u *AuthUsecase) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	return u.userRepo.Delete(ctx, userID)
}

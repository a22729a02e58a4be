package services

import (
	"context"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
	"github.com/luciano/vetconnect-go/internal/domain/repositories"
	"github.com/luciano/vetconnect-go/internal/validation"
	apperrors "github.com/luciano/vetconnect-go/pkg/errors"
)

// AuthService validates credentials client-side and delegates to the auth
// repository. Validation failures never reach the network.
type AuthService struct {
	repo repositories.AuthRepository
}

// NewAuthService creates a new auth service
func NewAuthService(repo repositories.AuthRepository) *AuthService {
	return &AuthService{repo: repo}
}

// SignIn authenticates after checking both fields are present
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*entities.Session, error) {
	if err := validation.SignIn(email, password); err != nil {
		return nil, err
	}
	return s.repo.SignIn(ctx, email, password)
}

// SignUp registers after the full field-by-field validation pass
func (s *AuthService) SignUp(ctx context.Context, params repositories.SignUpParams, confirmPassword string) (*entities.Session, error) {
	if err := validation.SignUp(params, confirmPassword); err != nil {
		return nil, err
	}
	return s.repo.SignUp(ctx, params)
}

// ChangePassword replaces the password of an authenticated user
func (s *AuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if !validation.IsValidPassword(newPassword) {
		return apperrors.NewValidationError(validation.MsgInvalidPassword)
	}
	return s.repo.ChangePassword(ctx, userID, oldPassword, newPassword)
}

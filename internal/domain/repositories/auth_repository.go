package repositories

import (
	"context"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
)

// AuthRepository defines the interface for authentication operations
type AuthRepository interface {
	// SignIn authenticates with email and password
	SignIn(ctx context.Context, email, password string) (*entities.Session, error)

	// SignUp registers a new client or veterinary account
	SignUp(ctx context.Context, req SignUpParams) (*entities.Session, error)

	// ChangePassword replaces the password of an authenticated user
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
}

// SignUpParams carries the registration payload. Role decides which of the
// client or clinic field groups applies.
type SignUpParams struct {
	Email    string
	Password string
	Role     entities.UserRole

	// Client (pet owner) fields
	Name    string
	DNI     string
	Phone   string
	Address string

	// Veterinary (clinic) fields
	ClinicName    string
	RUC           string
	License       string
	ClinicAddress string
	ClinicPhone   string
}

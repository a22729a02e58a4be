package restapi

import (
	"context"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
	"github.com/luciano/vetconnect-go/internal/domain/repositories"
	"github.com/luciano/vetconnect-go/internal/infrastructure/clients/vetapi"
)

// AuthAdapter implements authentication against the real backend.
type AuthAdapter struct {
	client *vetapi.Client
}

// NewAuthAdapter creates a real-backend auth adapter
func NewAuthAdapter(client *vetapi.Client) repositories.AuthRepository {
	return &AuthAdapter{client: client}
}

// SignIn authenticates with email and password
func (a *AuthAdapter) SignIn(ctx context.Context, email, password string) (*entities.Session, error) {
	var resp vetapi.AuthResponse
	req := vetapi.SignInRequest{Email: email, Password: password}
	if err := a.client.Post(ctx, vetapi.SignInPath, req, &resp); err != nil {
		return nil, err
	}
	session := sessionToEntity(resp)
	return &session, nil
}

// SignUp registers a new account
func (a *AuthAdapter) SignUp(ctx context.Context, params repositories.SignUpParams) (*entities.Session, error) {
	req := vetapi.SignUpRequest{
		Email:    params.Email,
		Password: params.Password,
		Roles:    []string{string(params.Role)},
	}
	if params.Role == entities.RoleVeterinary {
		req.VetCenterClinicName = params.ClinicName
		req.VetCenterRUC = params.RUC
		req.VetCenterLicense = params.License
		req.VetCenterAddress = params.ClinicAddress
		req.VetCenterPhone = params.ClinicPhone
	} else {
		req.Name = params.Name
		req.DNI = params.DNI
		req.Phone = params.Phone
		req.Address = params.Address
	}

	var resp vetapi.AuthResponse
	if err := a.client.Post(ctx, vetapi.SignUpPath, req, &resp); err != nil {
		return nil, err
	}
	session := sessionToEntity(resp)
	return &session, nil
}

// ChangePassword replaces the password of an authenticated user
func (a *AuthAdapter) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	req := vetapi.ChangePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword}
	return a.client.Post(ctx, vetapi.ChangePasswordPath(userID), req, nil)
}

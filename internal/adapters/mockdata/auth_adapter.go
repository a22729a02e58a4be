package mockdata

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
	"github.com/luciano/vetconnect-go/internal/domain/repositories"
	apperrors "github.com/luciano/vetconnect-go/pkg/errors"
)

// AuthAdapter authenticates against the seeded credential lists of the mock
// user document.
type AuthAdapter struct {
	source *Source
}

// NewAuthAdapter creates a mock auth adapter
func NewAuthAdapter(source *Source) repositories.AuthRepository {
	return &AuthAdapter{source: source}
}

// SignIn matches the email/password pair against the seeded client and
// veterinary credentials.
func (a *AuthAdapter) SignIn(ctx context.Context, email, password string) (*entities.Session, error) {
	doc, err := a.source.fetchUsers(ctx)
	if err != nil {
		return nil, err
	}

	for _, cred := range doc.Credentials.Clients {
		if cred.Email == email && cred.Password == password {
			return sessionFor(doc, cred.UserID)
		}
	}
	for _, cred := range doc.Credentials.Veterinaries {
		if cred.Email == email && cred.Password == password {
			return sessionFor(doc, cred.UserID)
		}
	}

	return nil, apperrors.NewUnauthorizedError(apperrors.MsgInvalidCredentials)
}

func sessionFor(doc *entities.UserDocument, userID string) (*entities.Session, error) {
	for _, user := range doc.Users {
		if user.ID == userID {
			return &entities.Session{Token: "mock-token", User: user}, nil
		}
	}
	return nil, apperrors.NewNotFoundError("Usuario no encontrado")
}

// SignUp fabricates a local account so the offline flow stays usable. The
// account is not persisted anywhere.
func (a *AuthAdapter) SignUp(ctx context.Context, req repositories.SignUpParams) (*entities.Session, error) {
	user := entities.User{
		ID:        uuid.NewString(),
		Email:     req.Email,
		Role:      req.Role,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if req.Role == entities.RoleVeterinary {
		user.Name = req.ClinicName
		user.Phone = req.ClinicPhone
		user.Address = req.ClinicAddress
		user.License = req.License
	} else {
		user.Name = req.Name
		user.Phone = req.Phone
		user.Address = req.Address
	}
	return &entities.Session{Token: "mock-token", User: user}, nil
}

// ChangePassword is a no-op on the read-only mock backend
func (a *AuthAdapter) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	return nil
}

package mockdata

import (
	"context"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
	"github.com/luciano/vetconnect-go/internal/domain/repositories"
	apperrors "github.com/luciano/vetconnect-go/pkg/errors"
)

// UserAdapter serves user profiles from the mock user document.
type UserAdapter struct {
	source *Source
}

// NewUserAdapter creates a mock user adapter
func NewUserAdapter(source *Source) repositories.UserRepository {
	return &UserAdapter{source: source}
}

// GetByID retrieves a user by ID
func (a *UserAdapter) GetByID(ctx context.Context, id string) (*entities.User, error) {
	doc, err := a.source.fetchUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doc.Users {
		if doc.Users[i].ID == id {
			return &doc.Users[i], nil
		}
	}
	return nil, apperrors.NewNotFoundError("Usuario no encontrado")
}

// UpdatePetOwner merges edits into the fetched record without persisting them
func (a *UserAdapter) UpdatePetOwner(ctx context.Context, id string, update repositories.PetOwnerUpdate) (*entities.User, error) {
	user, err := a.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.Photo != nil {
		user.ImageURL = *update.Photo
	}
	return user, nil
}

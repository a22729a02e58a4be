package restapi

import (
	"context"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
	"github.com/luciano/vetconnect-go/internal/domain/repositories"
	"github.com/luciano/vetconnect-go/internal/infrastructure/clients/vetapi"
)

// UserAdapter implements user profile operations against the real backend.
type UserAdapter struct {
	client *vetapi.Client
}

// NewUserAdapter creates a real-backend user adapter
func NewUserAdapter(client *vetapi.Client) repositories.UserRepository {
	return &UserAdapter{client: client}
}

// GetByID retrieves a pet owner profile
func (a *UserAdapter) GetByID(ctx context.Context, id string) (*entities.User, error) {
	var resp vetapi.PetOwnerResponse
	if err := a.client.Get(ctx, vetapi.PetOwnerPath(id), &resp); err != nil {
		return nil, err
	}
	user := petOwnerToEntity(resp)
	return &user, nil
}

// UpdatePetOwner applies the edit-profile flow for a client account
func (a *UserAdapter) UpdatePetOwner(ctx context.Context, id string, update repositories.PetOwnerUpdate) (*entities.User, error) {
	req := vetapi.UpdatePetOwnerRequest{
		Name:  update.Name,
		Email: update.Email,
		DNI:   update.DNI,
		Phone: update.Phone,
		Photo: update.Photo,
	}

	var resp vetapi.PetOwnerResponse
	if err := a.client.Put(ctx, vetapi.PetOwnerPath(id), req, &resp); err != nil {
		return nil, err
	}
	user := petOwnerToEntity(resp)
	return &user, nil
}

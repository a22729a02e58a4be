package repositories

import (
	"context"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
)

// UserRepository defines the interface for user profile operations
type UserRepository interface {
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*entities.User, error)

	// UpdatePetOwner applies the edit-profile flow for a client account.
	// Nil fields are left untouched.
	UpdatePetOwner(ctx context.Context, id string, update PetOwnerUpdate) (*entities.User, error)
}

// PetOwnerUpdate carries the editable pet-owner fields
type PetOwnerUpdate struct {
	Name  *string
	Email *string
	DNI   *string
	Phone *string
	Photo *string
}

package repositories

import (
	"context"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
)

// VeterinaryRepository defines the interface for clinic data operations
type VeterinaryRepository interface {
	// List retrieves every clinic
	List(ctx context.Context) ([]entities.Veterinary, error)

	// GetByID retrieves a clinic by ID
	GetByID(ctx context.Context, id string) (*entities.Veterinary, error)

	// Search matches clinics whose name or address contains the query,
	// case-insensitively. A blank query matches every clinic.
	Search(ctx context.Context, query string) ([]entities.Veterinary, error)

	// Update applies a clinic-side profile edit
	Update(ctx context.Context, id string, update VeterinaryUpdate) (*entities.Veterinary, error)

	// ListImages retrieves a clinic's gallery
	ListImages(ctx context.Context, id string) ([]entities.VeterinaryImage, error)

	// AddImage appends an image to a clinic's gallery
	AddImage(ctx context.Context, id string, imageURL string) (*entities.VeterinaryImage, error)
}

// VeterinaryUpdate carries the editable clinic profile fields. Nil fields are
// left untouched.
type VeterinaryUpdate struct {
	Name          *string
	Email         *string
	RUC           *string
	Phone         *string
	ImageProfile  *string
	Description   *string
	Address       *string
	BusinessHours []entities.BusinessHours
}

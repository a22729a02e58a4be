package mockdata

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
	"github.com/luciano/vetconnect-go/internal/domain/repositories"
	apperrors "github.com/luciano/vetconnect-go/pkg/errors"
)

// VeterinaryAdapter serves clinics from the mock veterinaries document.
type VeterinaryAdapter struct {
	source *Source
}

// NewVeterinaryAdapter creates a mock clinic adapter
func NewVeterinaryAdapter(source *Source) repositories.VeterinaryRepository {
	return &VeterinaryAdapter{source: source}
}

// List retrieves every clinic
func (a *VeterinaryAdapter) List(ctx context.Context) ([]entities.Veterinary, error) {
	return a.source.fetchVeterinaries(ctx)
}

// GetByID retrieves a clinic by ID
func (a *VeterinaryAdapter) GetByID(ctx context.Context, id string) (*entities.Veterinary, error) {
	vets, err := a.source.fetchVeterinaries(ctx)
	if err != nil {
		return nil, err
	}
	for i := range vets {
		if vets[i].ID == id {
			return &vets[i], nil
		}
	}
	return nil, apperrors.NewNotFoundError("Veterinaria no encontrada")
}

// Search matches name or address, case-insensitively. A blank query matches
// every clinic.
func (a *VeterinaryAdapter) Search(ctx context.Context, query string) ([]entities.Veterinary, error) {
	vets, err := a.source.fetchVeterinaries(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return vets, nil
	}

	needle := strings.ToLower(query)
	matched := make([]entities.Veterinary, 0, len(vets))
	for _, vet := range vets {
		if strings.Contains(strings.ToLower(vet.Name), needle) ||
			strings.Contains(strings.ToLower(vet.Address), needle) {
			matched = append(matched, vet)
		}
	}
	return matched, nil
}

// Update is not persisted by the mock backend; it returns the merged record
// so the profile screen can render the edit.
func (a *VeterinaryAdapter) Update(ctx context.Context, id string, update repositories.VeterinaryUpdate) (*entities.Veterinary, error) {
	vet, err := a.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		vet.Name = *update.Name
	}
	if update.Address != nil {
		vet.Address = *update.Address
	}
	if update.Phone != nil {
		if vet.Contact == nil {
			vet.Contact = &entities.Contact{}
		}
		vet.Contact.Phone = *update.Phone
	}
	if update.Email != nil {
		if vet.Contact == nil {
			vet.Contact = &entities.Contact{}
		}
		vet.Contact.Email = *update.Email
	}
	if update.BusinessHours != nil {
		vet.BusinessHours = update.BusinessHours
	}
	return vet, nil
}

// ListImages retrieves a clinic's gallery
func (a *VeterinaryAdapter) ListImages(ctx context.Context, id string) ([]entities.VeterinaryImage, error) {
	vet, err := a.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return vet.Images, nil
}

// AddImage fabricates a gallery entry without persisting it
func (a *VeterinaryAdapter) AddImage(ctx context.Context, id string, imageURL string) (*entities.VeterinaryImage, error) {
	if _, err := a.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return &entities.VeterinaryImage{ID: uuid.NewString(), URL: imageURL}, nil
}

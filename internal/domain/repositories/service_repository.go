package repositories

import (
	"context"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
)

// ServiceRepository defines the interface for vet-service operations
type ServiceRepository interface {
	// ListByVeterinary retrieves the services belonging to one clinic
	ListByVeterinary(ctx context.Context, veterinaryID string) ([]entities.VeterinaryService, error)

	// GetByID retrieves a single service
	GetByID(ctx context.Context, id string) (*entities.VeterinaryService, error)

	// Create adds a service to a clinic
	Create(ctx context.Context, service entities.VeterinaryService) (*entities.VeterinaryService, error)

	// Update replaces a service's editable fields
	Update(ctx context.Context, service entities.VeterinaryService) (*entities.VeterinaryService, error)

	// Delete removes a service
	Delete(ctx context.Context, id string) error
}

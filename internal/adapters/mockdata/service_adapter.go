package mockdata

import (
	"context"

	"github.com/google/uuid"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
	"github.com/luciano/vetconnect-go/internal/domain/repositories"
	apperrors "github.com/luciano/vetconnect-go/pkg/errors"
)

// ServiceAdapter serves vet services from the mock services document, with
// writes kept in the source overlay only.
type ServiceAdapter struct {
	source *Source
}

// NewServiceAdapter creates a mock service adapter
func NewServiceAdapter(source *Source) repositories.ServiceRepository {
	return &ServiceAdapter{source: source}
}

// ListByVeterinary retrieves one clinic's services
func (a *ServiceAdapter) ListByVeterinary(ctx context.Context, veterinaryID string) ([]entities.VeterinaryService, error) {
	services, err := a.source.fetchServices(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]entities.VeterinaryService, 0, len(services))
	for _, svc := range services {
		if svc.VeterinaryID == veterinaryID {
			filtered = append(filtered, svc)
		}
	}
	return filtered, nil
}

// GetByID retrieves a single service
func (a *ServiceAdapter) GetByID(ctx context.Context, id string) (*entities.VeterinaryService, error) {
	services, err := a.source.fetchServices(ctx)
	if err != nil {
		return nil, err
	}
	for i := range services {
		if services[i].ID == id {
			return &services[i], nil
		}
	}
	return nil, apperrors.NewNotFoundError(apperrors.MsgNotFound)
}

// Create adds a service to the overlay
func (a *ServiceAdapter) Create(ctx context.Context, service entities.VeterinaryService) (*entities.VeterinaryService, error) {
	service.ID = uuid.NewString()

	a.source.mu.Lock()
	a.source.createdServices = append(a.source.createdServices, service)
	a.source.mu.Unlock()

	return &service, nil
}

// Update replaces a service in the overlay
func (a *ServiceAdapter) Update(ctx context.Context, service entities.VeterinaryService) (*entities.VeterinaryService, error) {
	if _, err := a.GetByID(ctx, service.ID); err != nil {
		return nil, err
	}

	a.source.mu.Lock()
	a.source.updatedServices[service.ID] = service
	a.source.mu.Unlock()

	return &service, nil
}

// Delete tombstones a service in the overlay
func (a *ServiceAdapter) Delete(ctx context.Context, id string) error {
	if _, err := a.GetByID(ctx, id); err != nil {
		return err
	}

	a.source.mu.Lock()
	a.source.deletedServices[id] = true
	a.source.mu.Unlock()

	return nil
}

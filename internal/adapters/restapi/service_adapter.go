package restapi

import (
	"context"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
	"github.com/luciano/vetconnect-go/internal/domain/repositories"
	"github.com/luciano/vetconnect-go/internal/infrastructure/clients/vetapi"
)

// ServiceAdapter implements vet-service operations against the real backend.
type ServiceAdapter struct {
	client *vetapi.Client
}

// NewServiceAdapter creates a real-backend service adapter
func NewServiceAdapter(client *vetapi.Client) repositories.ServiceRepository {
	return &ServiceAdapter{client: client}
}

// ListByVeterinary retrieves one clinic's services
func (a *ServiceAdapter) ListByVeterinary(ctx context.Context, veterinaryID string) ([]entities.VeterinaryService, error) {
	var resp []vetapi.VetServiceResponse
	if err := a.client.Get(ctx, vetapi.VetServicesByVetCenterPath(veterinaryID), &resp); err != nil {
		return nil, err
	}
	services := make([]entities.VeterinaryService, 0, len(resp))
	for _, s := range resp {
		services = append(services, serviceToEntity(s))
	}
	return services, nil
}

// GetByID retrieves a single service
func (a *ServiceAdapter) GetByID(ctx context.Context, id string) (*entities.VeterinaryService, error) {
	var resp vetapi.VetServiceResponse
	if err := a.client.Get(ctx, vetapi.VetServicePath(id), &resp); err != nil {
		return nil, err
	}
	svc := serviceToEntity(resp)
	return &svc, nil
}

// Create adds a service to a clinic
func (a *ServiceAdapter) Create(ctx context.Context, service entities.VeterinaryService) (*entities.VeterinaryService, error) {
	vetID, err := parseID(service.VeterinaryID)
	if err != nil {
		return nil, err
	}

	req := vetapi.CreateVetServiceRequest{
		VetID:       vetID,
		Name:        service.Name,
		Description: service.Description,
		Price:       service.Price,
		Category:    string(service.Category),
		Features:    service.Features,
		IsActive:    service.IsActive,
	}
	if service.Duration != nil {
		req.Duration = *service.Duration
	}

	var resp vetapi.VetServiceResponse
	if err := a.client.Post(ctx, vetapi.VetServices, req, &resp); err != nil {
		return nil, err
	}
	created := serviceToEntity(resp)
	return &created, nil
}

// Update replaces a service's editable fields
func (a *ServiceAdapter) Update(ctx context.Context, service entities.VeterinaryService) (*entities.VeterinaryService, error) {
	req := vetapi.UpdateVetServiceRequest{
		Name:        service.Name,
		Description: service.Description,
		Price:       service.Price,
		Category:    string(service.Category),
		Features:    service.Features,
		IsActive:    service.IsActive,
	}
	if service.Duration != nil {
		req.Duration = *service.Duration
	}

	var resp vetapi.VetServiceResponse
	if err := a.client.Put(ctx, vetapi.VetServicePath(service.ID), req, &resp); err != nil {
		return nil, err
	}
	updated := serviceToEntity(resp)
	return &updated, nil
}

// Delete removes a service
func (a *ServiceAdapter) Delete(ctx context.Context, id string) error {
	return a.client.Delete(ctx, vetapi.VetServicePath(id))
}

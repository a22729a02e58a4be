package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
	"github.com/luciano/vetconnect-go/internal/domain/repositories"
)

// VetCenterService composes clinic reads and owns the clinic-side profile
// and service management flows.
type VetCenterService struct {
	vets     repositories.VeterinaryRepository
	services repositories.ServiceRepository
	reviews  repositories.ReviewRepository
}

// NewVetCenterService creates a new clinic service
func NewVetCenterService(
	vets repositories.VeterinaryRepository,
	services repositories.ServiceRepository,
	reviews repositories.ReviewRepository,
) *VetCenterService {
	return &VetCenterService{vets: vets, services: services, reviews: reviews}
}

// GetByID retrieves a clinic
func (s *VetCenterService) GetByID(ctx context.Context, id string) (*entities.Veterinary, error) {
	return s.vets.GetByID(ctx, id)
}

// List retrieves every clinic
func (s *VetCenterService) List(ctx context.Context) ([]entities.Veterinary, error) {
	return s.vets.List(ctx)
}

// GetWithDetails fetches a clinic together with its services and reviews.
// The constituent calls run sequentially; the first failure wins and the
// aggregate is only built when all three succeed.
func (s *VetCenterService) GetWithDetails(ctx context.Context, id string) (*entities.VeterinaryWithDetails, error) {
	vet, err := s.vets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	svcs, err := s.services.ListByVeterinary(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListByVeterinary(ctx, id)
	if err != nil {
		return nil, err
	}

	return &entities.VeterinaryWithDetails{
		Veterinary: *vet,
		Services:   svcs,
		Reviews:    reviews,
	}, nil
}

// GetProfile fetches a clinic with its gallery. A gallery failure degrades to
// the profile without images rather than failing the whole screen.
func (s *VetCenterService) GetProfile(ctx context.Context, id string) (*entities.Veterinary, []entities.VeterinaryImage, error) {
	vet, err := s.vets.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	images, err := s.vets.ListImages(ctx, id)
	if err != nil {
		log.Warn().Err(err).Str("veterinary_id", id).Msg("gallery fetch failed, showing profile without images")
		return vet, nil, nil
	}

	return vet, images, nil
}

// UpdateProfile applies a clinic-side profile edit
func (s *VetCenterService) UpdateProfile(ctx context.Context, id string, update repositories.VeterinaryUpdate) (*entities.Veterinary, error) {
	return s.vets.Update(ctx, id, update)
}

// AddImage appends an image to a clinic's gallery
func (s *VetCenterService) AddImage(ctx context.Context, id, imageURL string) (*entities.VeterinaryImage, error) {
	return s.vets.AddImage(ctx, id, imageURL)
}

// ListServices retrieves one clinic's services
func (s *VetCenterService) ListServices(ctx context.Context, id string) ([]entities.VeterinaryService, error) {
	return s.services.ListByVeterinary(ctx, id)
}

// AddService creates a service for a clinic
func (s *VetCenterService) AddService(ctx context.Context, service entities.VeterinaryService) (*entities.VeterinaryService, error) {
	return s.services.Create(ctx, service)
}

// UpdateService replaces a service's editable fields
func (s *VetCenterService) UpdateService(ctx context.Context, service entities.VeterinaryService) (*entities.VeterinaryService, error) {
	return s.services.Update(ctx, service)
}

// RemoveService deletes a service
func (s *VetCenterService) RemoveService(ctx context.Context, id string) error {
	return s.services.Delete(ctx, id)
}

package restapi

import (
	"context"
	"strings"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
	"github.com/luciano/vetconnect-go/internal/domain/repositories"
	"github.com/luciano/vetconnect-go/internal/infrastructure/clients/vetapi"
)

// VeterinaryAdapter implements clinic operations against the real backend.
type VeterinaryAdapter struct {
	client *vetapi.Client
}

// NewVeterinaryAdapter creates a real-backend clinic adapter
func NewVeterinaryAdapter(client *vetapi.Client) repositories.VeterinaryRepository {
	return &VeterinaryAdapter{client: client}
}

// List retrieves every clinic
func (a *VeterinaryAdapter) List(ctx context.Context) ([]entities.Veterinary, error) {
	var resp []vetapi.VetCenterResponse
	if err := a.client.Get(ctx, vetapi.VetCenters, &resp); err != nil {
		return nil, err
	}
	vets := make([]entities.Veterinary, 0, len(resp))
	for _, v := range resp {
		vets = append(vets, vetCenterToEntity(v))
	}
	return vets, nil
}

// GetByID retrieves a clinic by ID
func (a *VeterinaryAdapter) GetByID(ctx context.Context, id string) (*entities.Veterinary, error) {
	var resp vetapi.VetCenterResponse
	if err := a.client.Get(ctx, vetapi.VetCenterPath(id), &resp); err != nil {
		return nil, err
	}
	vet := vetCenterToEntity(resp)
	return &vet, nil
}

// Search lists all clinics and applies the same case-insensitive name or
// address substring match the mock backend uses. The backend only exposes an
// exact lookup-by-name, so the match runs here.
func (a *VeterinaryAdapter) Search(ctx context.Context, query string) ([]entities.Veterinary, error) {
	vets, err := a.List(ctx)
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

// Update applies a clinic-side profile edit
func (a *VeterinaryAdapter) Update(ctx context.Context, id string, update repositories.VeterinaryUpdate) (*entities.Veterinary, error) {
	req := vetapi.UpdateVetCenterRequest{
		Name:         update.Name,
		Email:        update.Email,
		RUC:          update.RUC,
		Phone:        update.Phone,
		ImageProfile: update.ImageProfile,
		Description:  update.Description,
		Address:      update.Address,
	}
	for _, h := range update.BusinessHours {
		req.BusinessHours = append(req.BusinessHours, vetapi.BusinessHour{
			Days: h.Days, Open: h.Open, Close: h.Close,
		})
	}

	var resp vetapi.VetCenterResponse
	if err := a.client.Put(ctx, vetapi.VetCenterPath(id), req, &resp); err != nil {
		return nil, err
	}
	vet := vetCenterToEntity(resp)
	return &vet, nil
}

// ListImages retrieves a clinic's gallery
func (a *VeterinaryAdapter) ListImages(ctx context.Context, id string) ([]entities.VeterinaryImage, error) {
	var resp []vetapi.VetCenterImageResponse
	if err := a.client.Get(ctx, vetapi.VetCenterImagesPath(id), &resp); err != nil {
		return nil, err
	}
	images := make([]entities.VeterinaryImage, 0, len(resp))
	for _, img := range resp {
		images = append(images, entities.VeterinaryImage{
			ID:  formatID(img.VetCenterImageID),
			URL: img.ImageURL,
		})
	}
	return images, nil
}

// AddImage appends an image to a clinic's gallery
func (a *VeterinaryAdapter) AddImage(ctx context.Context, id string, imageURL string) (*entities.VeterinaryImage, error) {
	req := vetapi.AddVetCenterImageRequest{ImageURL: imageURL}
	var resp vetapi.VetCenterImageResponse
	if err := a.client.Post(ctx, vetapi.VetCenterImagesPath(id), req, &resp); err != nil {
		return nil, err
	}
	return &entities.VeterinaryImage{ID: formatID(resp.VetCenterImageID), URL: resp.ImageURL}, nil
}

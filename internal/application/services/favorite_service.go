package services

import (
	"context"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
	"github.com/luciano/vetconnect-go/internal/domain/repositories"
	apperrors "github.com/luciano/vetconnect-go/pkg/errors"
)

// FavoriteService owns the bookmark flow. A favorite is unique per
// (user, clinic) pair; the guard runs here because neither backend enforces
// it.
type FavoriteService struct {
	favorites repositories.FavoriteRepository
	vets      repositories.VeterinaryRepository
}

// NewFavoriteService creates a new favorite service
func NewFavoriteService(favorites repositories.FavoriteRepository, vets repositories.VeterinaryRepository) *FavoriteService {
	return &FavoriteService{favorites: favorites, vets: vets}
}

// List retrieves a user's favorites
func (s *FavoriteService) List(ctx context.Context, userID string) ([]entities.Favorite, error) {
	return s.favorites.ListByUser(ctx, userID)
}

// ListWithClinics resolves each favorite to its clinic record. Favorites
// whose clinic no longer resolves are skipped.
func (s *FavoriteService) ListWithClinics(ctx context.Context, userID string) ([]entities.Veterinary, error) {
	favorites, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	clinics := make([]entities.Veterinary, 0, len(favorites))
	for _, fav := range favorites {
		vet, err := s.vets.GetByID(ctx, fav.VeterinaryID)
		if err != nil {
			if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
				continue
			}
			return nil, err
		}
		clinics = append(clinics, *vet)
	}
	return clinics, nil
}

// Add bookmarks a clinic, rejecting duplicates for the same pair
func (s *FavoriteService) Add(ctx context.Context, userID, veterinaryID string) (*entities.Favorite, error) {
	existing, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, fav := range existing {
		if fav.VeterinaryID == veterinaryID {
			return &fav, nil
		}
	}
	return s.favorites.Create(ctx, userID, veterinaryID)
}

// Remove deletes the bookmark for the given pair, if any
func (s *FavoriteService) Remove(ctx context.Context, userID, veterinaryID string) error {
	existing, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	for _, fav := range existing {
		if fav.VeterinaryID == veterinaryID {
			return s.favorites.Delete(ctx, fav.ID)
		}
	}
	return nil
}

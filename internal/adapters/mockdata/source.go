package mockdata

import (
	"context"
	"sync"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
	"github.com/luciano/vetconnect-go/internal/infrastructure/clients/vetapi"
)

// DocumentPaths locates the five read-only sample documents on the mock
// endpoint set.
type DocumentPaths struct {
	Veterinaries string
	Services     string
	Reviews      string
	Users        string
	Favorites    string
}

// DefaultDocumentPaths matches the layout served by cmd/mockapi
func DefaultDocumentPaths() DocumentPaths {
	return DocumentPaths{
		Veterinaries: "/v1/veterinaries",
		Services:     "/v1/services",
		Reviews:      "/v1/reviews",
		Users:        "/v1/users",
		Favorites:    "/v1/favorites",
	}
}

// Source fetches the sample documents and layers local, non-persisted writes
// on top of them. Documents are re-fetched on every call; only the overlay
// lives in memory, so a "created" service or favorite survives exactly as
// long as the adapter does.
type Source struct {
	client *vetapi.Client
	paths  DocumentPaths

	mu               sync.RWMutex
	createdServices  []entities.VeterinaryService
	updatedServices  map[string]entities.VeterinaryService
	deletedServices  map[string]bool
	createdReviews   []entities.Review
	deletedReviews   map[string]bool
	createdFavorites []entities.Favorite
	deletedFavorites map[string]bool
}

// NewSource creates a document source over the mock endpoint client
func NewSource(client *vetapi.Client, paths DocumentPaths) *Source {
	return &Source{
		client:           client,
		paths:            paths,
		updatedServices:  make(map[string]entities.VeterinaryService),
		deletedServices:  make(map[string]bool),
		deletedReviews:   make(map[string]bool),
		deletedFavorites: make(map[string]bool),
	}
}

func (s *Source) fetchVeterinaries(ctx context.Context) ([]entities.Veterinary, error) {
	var doc entities.VeterinaryDocument
	if err := s.client.Get(ctx, s.paths.Veterinaries, &doc); err != nil {
		return nil, err
	}
	return doc.Veterinaries, nil
}

func (s *Source) fetchServices(ctx context.Context) ([]entities.VeterinaryService, error) {
	var doc entities.ServiceDocument
	if err := s.client.Get(ctx, s.paths.Services, &doc); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	merged := make([]entities.VeterinaryService, 0, len(doc.Services)+len(s.createdServices))
	for _, svc := range doc.Services {
		if s.deletedServices[svc.ID] {
			continue
		}
		if updated, ok := s.updatedServices[svc.ID]; ok {
			svc = updated
		}
		merged = append(merged, svc)
	}
	for _, svc := range s.createdServices {
		if s.deletedServices[svc.ID] {
			continue
		}
		if updated, ok := s.updatedServices[svc.ID]; ok {
			svc = updated
		}
		merged = append(merged, svc)
	}
	return merged, nil
}

func (s *Source) fetchReviews(ctx context.Context) ([]entities.Review, error) {
	var doc entities.ReviewDocument
	if err := s.client.Get(ctx, s.paths.Reviews, &doc); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	merged := make([]entities.Review, 0, len(doc.Reviews)+len(s.createdReviews))
	for _, r := range doc.Reviews {
		if !s.deletedReviews[r.ID] {
			merged = append(merged, r)
		}
	}
	for _, r := range s.createdReviews {
		if !s.deletedReviews[r.ID] {
			merged = append(merged, r)
		}
	}
	return merged, nil
}

func (s *Source) fetchUsers(ctx context.Context) (*entities.UserDocument, error) {
	var doc entities.UserDocument
	if err := s.client.Get(ctx, s.paths.Users, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *Source) fetchFavorites(ctx context.Context) ([]entities.Favorite, error) {
	var doc entities.FavoriteDocument
	if err := s.client.Get(ctx, s.paths.Favorites, &doc); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	merged := make([]entities.Favorite, 0, len(doc.Favorites)+len(s.createdFavorites))
	for _, f := range doc.Favorites {
		if !s.deletedFavorites[f.ID] {
			merged = append(merged, f)
		}
	}
	for _, f := range s.createdFavorites {
		if !s.deletedFavorites[f.ID] {
			merged = append(merged, f)
		}
	}
	return merged, nil
}

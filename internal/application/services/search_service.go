package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
	"github.com/luciano/vetconnect-go/internal/domain/repositories"
)

// SearchService runs the clinic search: substring match at the repository,
// rating and price filters here, services attached per result row. The
// max-price filter needs each candidate's average service price, so it fans
// out one services fetch per candidate.
type SearchService struct {
	vets     repositories.VeterinaryRepository
	services repositories.ServiceRepository
}

// NewSearchService creates a new search service
func NewSearchService(vets repositories.VeterinaryRepository, services repositories.ServiceRepository) *SearchService {
	return &SearchService{vets: vets, services: services}
}

// Search matches, filters and enriches clinics. A failed services fetch for
// one candidate degrades that row to an empty service list instead of
// failing the search.
func (s *SearchService) Search(ctx context.Context, query string, filter entities.FilterOptions) ([]entities.VeterinaryWithServices, error) {
	vets, err := s.vets.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	results := make([]entities.VeterinaryWithServices, 0, len(vets))
	for _, vet := range vets {
		if vet.Rating < filter.MinRating {
			continue
		}

		svcs, err := s.services.ListByVeterinary(ctx, vet.ID)
		if err != nil {
			log.Warn().Err(err).Str("veterinary_id", vet.ID).Msg("services fetch failed during search")
			svcs = nil
		}

		if filter.MaxPrice > 0 && entities.AveragePrice(svcs) > filter.MaxPrice {
			continue
		}

		results = append(results, entities.VeterinaryWithServices{
			Veterinary: vet,
			Services:   svcs,
		})
	}

	return results, nil
}

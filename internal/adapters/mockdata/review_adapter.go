package mockdata

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
	"github.com/luciano/vetconnect-go/internal/domain/repositories"
	apperrors "github.com/luciano/vetconnect-go/pkg/errors"
)

// ReviewAdapter serves reviews from the mock reviews document.
type ReviewAdapter struct {
	source *Source
}

// NewReviewAdapter creates a mock review adapter
func NewReviewAdapter(source *Source) repositories.ReviewRepository {
	return &ReviewAdapter{source: source}
}

// ListByVeterinary retrieves the reviews about one clinic
func (a *ReviewAdapter) ListByVeterinary(ctx context.Context, veterinaryID string) ([]entities.Review, error) {
	reviews, err := a.source.fetchReviews(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]entities.Review, 0, len(reviews))
	for _, r := range reviews {
		if r.VeterinaryID == veterinaryID {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// ListByUser retrieves the reviews authored by one user
func (a *ReviewAdapter) ListByUser(ctx context.Context, userID string) ([]entities.Review, error) {
	reviews, err := a.source.fetchReviews(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]entities.Review, 0, len(reviews))
	for _, r := range reviews {
		if r.UserID == userID {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// Create appends a review to the overlay
func (a *ReviewAdapter) Create(ctx context.Context, review entities.Review) (*entities.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, apperrors.NewValidationError("La calificación debe estar entre 1 y 5")
	}

	review.ID = uuid.NewString()
	review.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	a.source.mu.Lock()
	a.source.createdReviews = append(a.source.createdReviews, review)
	a.source.mu.Unlock()

	return &review, nil
}

// Delete tombstones a review in the overlay
func (a *ReviewAdapter) Delete(ctx context.Context, id string) error {
	a.source.mu.Lock()
	a.source.deletedReviews[id] = true
	a.source.mu.Unlock()
	return nil
}

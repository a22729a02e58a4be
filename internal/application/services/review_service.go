package services

import (
	"context"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
	"github.com/luciano/vetconnect-go/internal/domain/repositories"
	apperrors "github.com/luciano/vetconnect-go/pkg/errors"
)

// ReviewService owns the review flows.
type ReviewService struct {
	reviews repositories.ReviewRepository
}

// NewReviewService creates a new review service
func NewReviewService(reviews repositories.ReviewRepository) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// ListByVeterinary retrieves the reviews about one clinic
func (s *ReviewService) ListByVeterinary(ctx context.Context, veterinaryID string) ([]entities.Review, error) {
	return s.reviews.ListByVeterinary(ctx, veterinaryID)
}

// ListByUser retrieves the reviews authored by one user
func (s *ReviewService) ListByUser(ctx context.Context, userID string) ([]entities.Review, error) {
	return s.reviews.ListByUser(ctx, userID)
}

// Create publishes a review after the rating range check
func (s *ReviewService) Create(ctx context.Context, review entities.Review) (*entities.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, apperrors.NewValidationError("La calificación debe estar entre 1 y 5")
	}
	return s.reviews.Create(ctx, review)
}

// Delete removes a review
func (s *ReviewService) Delete(ctx context.Context, id string) error {
	return s.reviews.Delete(ctx, id)
}

package restapi

import (
	"context"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
	"github.com/luciano/vetconnect-go/internal/domain/repositories"
	"github.com/luciano/vetconnect-go/internal/infrastructure/clients/vetapi"
)

// ReviewAdapter implements review operations against the real backend.
type ReviewAdapter struct {
	client *vetapi.Client
}

// NewReviewAdapter creates a real-backend review adapter
func NewReviewAdapter(client *vetapi.Client) repositories.ReviewRepository {
	return &ReviewAdapter{client: client}
}

// ListByVeterinary retrieves the reviews about one clinic
func (a *ReviewAdapter) ListByVeterinary(ctx context.Context, veterinaryID string) ([]entities.Review, error) {
	var resp []vetapi.ReviewResponse
	if err := a.client.Get(ctx, vetapi.ReviewsByVetCenterPath(veterinaryID), &resp); err != nil {
		return nil, err
	}
	reviews := make([]entities.Review, 0, len(resp))
	for _, r := range resp {
		reviews = append(reviews, reviewToEntity(r))
	}
	return reviews, nil
}

// ListByUser lists every review and filters by author; the backend has no
// per-user endpoint.
func (a *ReviewAdapter) ListByUser(ctx context.Context, userID string) ([]entities.Review, error) {
	var resp []vetapi.ReviewResponse
	if err := a.client.Get(ctx, vetapi.Reviews, &resp); err != nil {
		return nil, err
	}
	reviews := make([]entities.Review, 0, len(resp))
	for _, r := range resp {
		if formatID(r.UserID) == userID {
			reviews = append(reviews, reviewToEntity(r))
		}
	}
	return reviews, nil
}

// Create publishes a review
func (a *ReviewAdapter) Create(ctx context.Context, review entities.Review) (*entities.Review, error) {
	vetID, err := parseID(review.VeterinaryID)
	if err != nil {
		return nil, err
	}
	ownerID, err := parseID(review.UserID)
	if err != nil {
		return nil, err
	}

	req := vetapi.CreateReviewRequest{
		VetCenterID: vetID,
		PetOwnerID:  ownerID,
		Rating:      review.Rating,
		Comments:    review.Comment,
	}

	var resp vetapi.ReviewResponse
	if err := a.client.Post(ctx, vetapi.Reviews, req, &resp); err != nil {
		return nil, err
	}
	created := reviewToEntity(resp)
	return &created, nil
}

// Delete removes a review
func (a *ReviewAdapter) Delete(ctx context.Context, id string) error {
	return a.client.Delete(ctx, vetapi.Reviews+"/"+id)
}

package repositories

import (
	"context"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
)

// ReviewRepository defines the interface for review operations
type ReviewRepository interface {
	// ListByVeterinary retrieves the reviews written about one clinic
	ListByVeterinary(ctx context.Context, veterinaryID string) ([]entities.Review, error)

	// ListByUser retrieves the reviews authored by one user
	ListByUser(ctx context.Context, userID string) ([]entities.Review, error)

	// Create publishes a review. Rating must already be in [1,5].
	Create(ctx context.Context, review entities.Review) (*entities.Review, error)

	// Delete removes a review
	Delete(ctx context.Context, id string) error
}

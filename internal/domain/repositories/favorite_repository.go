package repositories

import (
	"context"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
)

// FavoriteRepository defines the interface for favorite operations
type FavoriteRepository interface {
	// ListByUser retrieves a user's saved clinics
	ListByUser(ctx context.Context, userID string) ([]entities.Favorite, error)

	// Create bookmarks a clinic for a user
	Create(ctx context.Context, userID, veterinaryID string) (*entities.Favorite, error)

	// Delete removes a bookmark
	Delete(ctx context.Context, id string) error
}

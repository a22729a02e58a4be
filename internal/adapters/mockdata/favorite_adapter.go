package mockdata

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
	"github.com/luciano/vetconnect-go/internal/domain/repositories"
)

// FavoriteAdapter serves favorites from the mock favorites document.
type FavoriteAdapter struct {
	source *Source
}

// NewFavoriteAdapter creates a mock favorite adapter
func NewFavoriteAdapter(source *Source) repositories.FavoriteRepository {
	return &FavoriteAdapter{source: source}
}

// ListByUser retrieves a user's saved clinics
func (a *FavoriteAdapter) ListByUser(ctx context.Context, userID string) ([]entities.Favorite, error) {
	favorites, err := a.source.fetchFavorites(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]entities.Favorite, 0, len(favorites))
	for _, f := range favorites {
		if f.UserID == userID {
			filtered = append(filtered, f)
		}
	}
	return filtered, nil
}

// Create appends a favorite to the overlay
func (a *FavoriteAdapter) Create(ctx context.Context, userID, veterinaryID string) (*entities.Favorite, error) {
	favorite := entities.Favorite{
		ID:           uuid.NewString(),
		UserID:       userID,
		VeterinaryID: veterinaryID,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	a.source.mu.Lock()
	a.source.createdFavorites = append(a.source.createdFavorites, favorite)
	a.source.mu.Unlock()

	return &favorite, nil
}

// Delete tombstones a favorite in the overlay
func (a *FavoriteAdapter) Delete(ctx context.Context, id string) error {
	a.source.mu.Lock()
	a.source.deletedFavorites[id] = true
	a.source.mu.Unlock()
	return nil
}

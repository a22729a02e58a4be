package restapi

import (
	"context"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
	"github.com/luciano/vetconnect-go/internal/domain/repositories"
	"github.com/luciano/vetconnect-go/internal/infrastructure/clients/vetapi"
)

// FavoriteAdapter implements favorite operations against the real backend.
type FavoriteAdapter struct {
	client *vetapi.Client
}

// NewFavoriteAdapter creates a real-backend favorite adapter
func NewFavoriteAdapter(client *vetapi.Client) repositories.FavoriteRepository {
	return &FavoriteAdapter{client: client}
}

// ListByUser retrieves a user's saved clinics
func (a *FavoriteAdapter) ListByUser(ctx context.Context, userID string) ([]entities.Favorite, error) {
	var resp []vetapi.FavoriteResponse
	if err := a.client.Get(ctx, vetapi.FavoritesByUserPath(userID), &resp); err != nil {
		return nil, err
	}
	favorites := make([]entities.Favorite, 0, len(resp))
	for _, f := range resp {
		favorites = append(favorites, favoriteToEntity(f))
	}
	return favorites, nil
}

// Create bookmarks a clinic for a user
func (a *FavoriteAdapter) Create(ctx context.Context, userID, veterinaryID string) (*entities.Favorite, error) {
	uid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	vid, err := parseID(veterinaryID)
	if err != nil {
		return nil, err
	}

	req := vetapi.CreateFavoriteRequest{UserID: uid, VeterinaryID: vid}
	var resp vetapi.FavoriteResponse
	if err := a.client.Post(ctx, vetapi.Favorites, req, &resp); err != nil {
		return nil, err
	}
	created := favoriteToEntity(resp)
	return &created, nil
}

// Delete removes a bookmark
func (a *FavoriteAdapter) Delete(ctx context.Context, id string) error {
	return a.client.Delete(ctx, vetapi.FavoritePath(id))
}

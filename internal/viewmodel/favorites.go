package viewmodel

import (
	"context"

	"github.com/luciano/vetconnect-go/internal/application/services"
	"github.com/luciano/vetconnect-go/internal/domain/entities"
	"github.com/luciano/vetconnect-go/internal/session"
	apperrors "github.com/luciano/vetconnect-go/pkg/errors"
)

// FavoritesViewModel drives the saved-clinics screen.
type FavoritesViewModel struct {
	scope     *Scope
	favorites *services.FavoriteService
	session   *session.Manager

	State *Holder[[]entities.Veterinary]
}

// NewFavoritesViewModel creates the favorites view-model under a screen scope
func NewFavoritesViewModel(scope *Scope, favorites *services.FavoriteService, sess *session.Manager) *FavoritesViewModel {
	return &FavoritesViewModel{
		scope:     scope,
		favorites: favorites,
		session:   sess,
		State:     NewHolder[[]entities.Veterinary](),
	}
}

// Load fetches the signed-in user's saved clinics
func (vm *FavoritesViewModel) Load() <-chan struct{} {
	userID := vm.session.UserID()
	if userID == "" {
		vm.State.Fail(apperrors.NewUnauthorizedError(apperrors.MsgUnauthorized))
		return closedChan()
	}

	return vm.State.Load(vm.scope.Context(), func(ctx context.Context) ([]entities.Veterinary, error) {
		return vm.favorites.ListWithClinics(ctx, userID)
	})
}

// Remove drops a clinic from the saved list and reloads
func (vm *FavoritesViewModel) Remove(veterinaryID string) <-chan struct{} {
	userID := vm.session.UserID()
	if userID == "" {
		vm.State.Fail(apperrors.NewUnauthorizedError(apperrors.MsgUnauthorized))
		return closedChan()
	}

	return vm.State.Load(vm.scope.Context(), func(ctx context.Context) ([]entities.Veterinary, error) {
		if err := vm.favorites.Remove(ctx, userID, veterinaryID); err != nil {
			return nil, err
		}
		return vm.favorites.ListWithClinics(ctx, userID)
	})
}

package viewmodel

import (
	"context"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
	"github.com/luciano/vetconnect-go/internal/domain/repositories"
	"github.com/luciano/vetconnect-go/internal/session"
	apperrors "github.com/luciano/vetconnect-go/pkg/errors"
)

// ProfileViewModel drives the client-side profile screen.
type ProfileViewModel struct {
	scope   *Scope
	users   repositories.UserRepository
	session *session.Manager

	State       *Holder[entities.User]
	UpdateState *Holder[struct{}]
}

// NewProfileViewModel creates the client profile view-model
func NewProfileViewModel(scope *Scope, users repositories.UserRepository, sess *session.Manager) *ProfileViewModel {
	return &ProfileViewModel{
		scope:       scope,
		users:       users,
		session:     sess,
		State:       NewHolder[entities.User](),
		UpdateState: NewHolder[struct{}](),
	}
}

// Load fetches the signed-in user's profile
func (vm *ProfileViewModel) Load() <-chan struct{} {
	userID := vm.session.UserID()
	if userID == "" {
		vm.State.Fail(apperrors.NewUnauthorizedError(msgMissingAccount))
		return closedChan()
	}

	return vm.State.Load(vm.scope.Context(), func(ctx context.Context) (entities.User, error) {
		user, err := vm.users.GetByID(ctx, userID)
		if err != nil {
			return entities.User{}, err
		}
		return *user, nil
	})
}

// Update saves a profile edit on the update sub-state, then reloads
func (vm *ProfileViewModel) Update(update repositories.PetOwnerUpdate) <-chan struct{} {
	userID := vm.session.UserID()
	if userID == "" {
		vm.UpdateState.Fail(apperrors.NewUnauthorizedError(msgMissingAccount))
		return closedChan()
	}

	return vm.UpdateState.Load(vm.scope.Context(), func(ctx context.Context) (struct{}, error) {
		if _, err := vm.users.UpdatePetOwner(ctx, userID, update); err != nil {
			return struct{}{}, err
		}
		vm.Load()
		return struct{}{}, nil
	})
}

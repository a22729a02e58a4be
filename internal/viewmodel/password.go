package viewmodel

import (
	"context"

	"github.com/luciano/vetconnect-go/internal/application/services"
	"github.com/luciano/vetconnect-go/internal/session"
	"github.com/luciano/vetconnect-go/internal/validation"
	apperrors "github.com/luciano/vetconnect-go/pkg/errors"
)

// passwordChangedMessage is shown when the change-password flow completes
const passwordChangedMessage = "Contraseña actualizada"

// ChangePasswordViewModel drives the change-password screen.
type ChangePasswordViewModel struct {
	scope   *Scope
	auth    *services.AuthService
	session *session.Manager

	State *Holder[string]
}

// NewChangePasswordViewModel creates the change-password view-model
func NewChangePasswordViewModel(scope *Scope, auth *services.AuthService, sess *session.Manager) *ChangePasswordViewModel {
	return &ChangePasswordViewModel{scope: scope, auth: auth, session: sess, State: NewHolder[string]()}
}

// Change validates locally and submits the password change
func (vm *ChangePasswordViewModel) Change(oldPassword, newPassword, confirmPassword string) <-chan struct{} {
	if !validation.IsValidPassword(newPassword) {
		vm.State.Fail(apperrors.NewValidationError(validation.MsgInvalidPassword))
		return closedChan()
	}
	if newPassword != confirmPassword {
		vm.State.Fail(apperrors.NewValidationError(validation.MsgPasswordNoMatch))
		return closedChan()
	}

	userID := vm.session.UserID()
	if userID == "" {
		vm.State.Fail(apperrors.NewUnauthorizedError(apperrors.MsgUnauthorized))
		return closedChan()
	}

	return vm.State.Load(vm.scope.Context(), func(ctx context.Context) (string, error) {
		if err := vm.auth.ChangePassword(ctx, userID, oldPassword, newPassword); err != nil {
			return "", err
		}
		return passwordChangedMessage, nil
	})
}

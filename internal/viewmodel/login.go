package viewmodel

import (
	"context"
	"strings"

	"github.com/luciano/vetconnect-go/internal/application/services"
	"github.com/luciano/vetconnect-go/internal/domain/entities"
	"github.com/luciano/vetconnect-go/internal/session"
	"github.com/luciano/vetconnect-go/internal/validation"
	apperrors "github.com/luciano/vetconnect-go/pkg/errors"
)

// LoginResult is the Success payload of the login screen
type LoginResult struct {
	User      entities.User
	IsVetUser bool
}

// LoginViewModel drives the login screen.
type LoginViewModel struct {
	scope   *Scope
	auth    *services.AuthService
	session *session.Manager

	State *Holder[LoginResult]
}

// NewLoginViewModel creates the login view-model under a screen scope
func NewLoginViewModel(scope *Scope, auth *services.AuthService, sess *session.Manager) *LoginViewModel {
	return &LoginViewModel{
		scope:   scope,
		auth:    auth,
		session: sess,
		State:   NewHolder[LoginResult](),
	}
}

// Login validates the fields and signs in. Blank fields fail before any
// network call.
func (vm *LoginViewModel) Login(email, password string) <-chan struct{} {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		vm.State.Fail(apperrors.NewValidationError(validation.MsgFieldsRequired))
		return closedChan()
	}

	return vm.State.Load(vm.scope.Context(), func(ctx context.Context) (LoginResult, error) {
		sess, err := vm.auth.SignIn(ctx, email, password)
		if err != nil {
			return LoginResult{}, err
		}
		if err := vm.session.SetSession(sess); err != nil {
			return LoginResult{}, err
		}
		if sess.User.IsVeterinary() && sess.User.VeterinaryID != "" {
			if err := vm.session.SetVetCenterID(sess.User.VeterinaryID); err != nil {
				return LoginResult{}, err
			}
		}
		return LoginResult{User: sess.User, IsVetUser: sess.User.IsVeterinary()}, nil
	})
}

// ResetState returns the screen to Initial
func (vm *LoginViewModel) ResetState() {
	vm.State.Reset()
}

func closedChan() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

package viewmodel

import (
	"context"

	"github.com/luciano/vetconnect-go/internal/application/services"
	"github.com/luciano/vetconnect-go/internal/domain/entities"
	"github.com/luciano/vetconnect-go/internal/domain/repositories"
	"github.com/luciano/vetconnect-go/internal/validation"
)

// registerSuccessMessage is shown when either registration flow completes
const registerSuccessMessage = "Registro exitoso"

// RegisterViewModel drives the sign-up screen for both account kinds.
type RegisterViewModel struct {
	scope *Scope
	auth  *services.AuthService

	State *Holder[string]
}

// NewRegisterViewModel creates the register view-model under a screen scope
func NewRegisterViewModel(scope *Scope, auth *services.AuthService) *RegisterViewModel {
	return &RegisterViewModel{scope: scope, auth: auth, State: NewHolder[string]()}
}

// RegisterClient signs up a pet owner. Validation failures surface as Error
// without ever reaching Loading.
func (vm *RegisterViewModel) RegisterClient(email, password, confirmPassword, name, dni, phone, address string) <-chan struct{} {
	params := repositories.SignUpParams{
		Email:    email,
		Password: password,
		Role:     entities.RoleClient,
		Name:     name,
		DNI:      dni,
		Phone:    phone,
		Address:  address,
	}
	return vm.register(params, confirmPassword)
}

// RegisterVeterinary signs up a clinic account
func (vm *RegisterViewModel) RegisterVeterinary(email, password, confirmPassword, clinicName, ruc, license, address, phone string) <-chan struct{} {
	params := repositories.SignUpParams{
		Email:         email,
		Password:      password,
		Role:          entities.RoleVeterinary,
		ClinicName:    clinicName,
		RUC:           ruc,
		License:       license,
		ClinicAddress: address,
		ClinicPhone:   phone,
	}
	return vm.register(params, confirmPassword)
}

func (vm *RegisterViewModel) register(params repositories.SignUpParams, confirmPassword string) <-chan struct{} {
	if err := validation.SignUp(params, confirmPassword); err != nil {
		vm.State.Fail(err)
		return closedChan()
	}

	return vm.State.Load(vm.scope.Context(), func(ctx context.Context) (string, error) {
		if _, err := vm.auth.SignUp(ctx, params, confirmPassword); err != nil {
			return "", err
		}
		return registerSuccessMessage, nil
	})
}

// ResetState returns the screen to Initial
func (vm *RegisterViewModel) ResetState() {
	vm.State.Reset()
}

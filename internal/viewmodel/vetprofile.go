package viewmodel

import (
	"context"

	"github.com/luciano/vetconnect-go/internal/application/services"
	"github.com/luciano/vetconnect-go/internal/domain/entities"
	"github.com/luciano/vetconnect-go/internal/domain/repositories"
	"github.com/luciano/vetconnect-go/internal/session"
	apperrors "github.com/luciano/vetconnect-go/pkg/errors"
)

// Fixed messages of the clinic profile screen.
const (
	msgMissingToken   = "No se encontró el token de autenticación"
	msgMissingAccount = "No se encontró la información del usuario"
	msgSessionExpired = "Sesión expirada. Por favor, inicie sesión nuevamente"
)

// VetProfile is the Success payload of the clinic profile screen
type VetProfile struct {
	Veterinary entities.Veterinary
	Images     []entities.VeterinaryImage
}

// VetProfileViewModel drives the clinic-side profile screen. Loading the
// profile and saving an edit are separate finite states so a failed save
// never blanks the profile on screen.
type VetProfileViewModel struct {
	scope   *Scope
	clinics *services.VetCenterService
	session *session.Manager

	State       *Holder[VetProfile]
	UpdateState *Holder[struct{}]
}

// NewVetProfileViewModel creates the clinic profile view-model
func NewVetProfileViewModel(scope *Scope, clinics *services.VetCenterService, sess *session.Manager) *VetProfileViewModel {
	return &VetProfileViewModel{
		scope:       scope,
		clinics:     clinics,
		session:     sess,
		State:       NewHolder[VetProfile](),
		UpdateState: NewHolder[struct{}](),
	}
}

// Load fetches the signed-in clinic's profile and gallery
func (vm *VetProfileViewModel) Load() <-chan struct{} {
	if vm.session.Token() == "" {
		vm.State.Fail(apperrors.NewUnauthorizedError(msgMissingToken))
		return closedChan()
	}

	vetID := vm.session.VetCenterID()
	if vetID == "" {
		vetID = vm.session.UserID()
	}
	if vetID == "" {
		vm.State.Fail(apperrors.NewUnauthorizedError(msgMissingAccount))
		return closedChan()
	}

	return vm.State.Load(vm.scope.Context(), func(ctx context.Context) (VetProfile, error) {
		vet, images, err := vm.clinics.GetProfile(ctx, vetID)
		if err != nil {
			if apperrors.IsType(err, apperrors.ErrorTypeUnauthorized) {
				_ = vm.session.Clear()
				return VetProfile{}, apperrors.NewUnauthorizedError(msgSessionExpired)
			}
			return VetProfile{}, err
		}
		return VetProfile{Veterinary: *vet, Images: images}, nil
	})
}

// UpdateProfile saves a clinic profile edit on the update sub-state, then
// reloads the profile on success.
func (vm *VetProfileViewModel) UpdateProfile(update repositories.VeterinaryUpdate) <-chan struct{} {
	vetID := vm.session.VetCenterID()
	if vetID == "" {
		vetID = vm.session.UserID()
	}
	if vetID == "" {
		vm.UpdateState.Fail(apperrors.NewUnauthorizedError(msgMissingAccount))
		return closedChan()
	}

	return vm.UpdateState.Load(vm.scope.Context(), func(ctx context.Context) (struct{}, error) {
		if _, err := vm.clinics.UpdateProfile(ctx, vetID, update); err != nil {
			return struct{}{}, err
		}
		vm.Load()
		return struct{}{}, nil
	})
}

// ResetUpdateState clears the update sub-state back to Initial
func (vm *VetProfileViewModel) ResetUpdateState() {
	vm.UpdateState.Reset()
}

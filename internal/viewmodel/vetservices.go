package viewmodel

import (
	"context"

	"github.com/luciano/vetconnect-go/internal/application/services"
	"github.com/luciano/vetconnect-go/internal/domain/entities"
)

// VetServicesViewModel drives the clinic-side service management screen.
type VetServicesViewModel struct {
	scope   *Scope
	clinics *services.VetCenterService

	State *Holder[[]entities.VeterinaryService]
}

// NewVetServicesViewModel creates the service management view-model
func NewVetServicesViewModel(scope *Scope, clinics *services.VetCenterService) *VetServicesViewModel {
	return &VetServicesViewModel{
		scope:   scope,
		clinics: clinics,
		State:   NewHolder[[]entities.VeterinaryService](),
	}
}

// Load fetches one clinic's services
func (vm *VetServicesViewModel) Load(veterinaryID string) <-chan struct{} {
	return vm.State.Load(vm.scope.Context(), func(ctx context.Context) ([]entities.VeterinaryService, error) {
		return vm.clinics.ListServices(ctx, veterinaryID)
	})
}

// Add creates a service and reloads the list
func (vm *VetServicesViewModel) Add(service entities.VeterinaryService) <-chan struct{} {
	return vm.State.Load(vm.scope.Context(), func(ctx context.Context) ([]entities.VeterinaryService, error) {
		if _, err := vm.clinics.AddService(ctx, service); err != nil {
			return nil, err
		}
		return vm.clinics.ListServices(ctx, service.VeterinaryID)
	})
}

// Update edits a service and reloads the list
func (vm *VetServicesViewModel) Update(service entities.VeterinaryService) <-chan struct{} {
	return vm.State.Load(vm.scope.Context(), func(ctx context.Context) ([]entities.VeterinaryService, error) {
		if _, err := vm.clinics.UpdateService(ctx, service); err != nil {
			return nil, err
		}
		return vm.clinics.ListServices(ctx, service.VeterinaryID)
	})
}

// Remove deletes a service and reloads the list
func (vm *VetServicesViewModel) Remove(veterinaryID, serviceID string) <-chan struct{} {
	return vm.State.Load(vm.scope.Context(), func(ctx context.Context) ([]entities.VeterinaryService, error) {
		if err := vm.clinics.RemoveService(ctx, serviceID); err != nil {
			return nil, err
		}
		return vm.clinics.ListServices(ctx, veterinaryID)
	})
}

package viewmodel

import (
	"context"
	"sync"

	"github.com/luciano/vetconnect-go/internal/application/services"
	"github.com/luciano/vetconnect-go/internal/domain/entities"
	"github.com/luciano/vetconnect-go/internal/session"
)

// VetDetail is the Success payload of the clinic detail screen
type VetDetail struct {
	Details    entities.VeterinaryWithDetails
	IsFavorite bool
}

// VetDetailViewModel drives the clinic detail screen.
type VetDetailViewModel struct {
	scope     *Scope
	clinics   *services.VetCenterService
	favorites *services.FavoriteService
	session   *session.Manager

	mu        sync.Mutex
	currentID string

	State *Holder[VetDetail]
}

// NewVetDetailViewModel creates the detail view-model under a screen scope
func NewVetDetailViewModel(scope *Scope, clinics *services.VetCenterService, favorites *services.FavoriteService, sess *session.Manager) *VetDetailViewModel {
	return &VetDetailViewModel{
		scope:     scope,
		clinics:   clinics,
		favorites: favorites,
		session:   sess,
		State:     NewHolder[VetDetail](),
	}
}

// Load fetches the aggregate for one clinic. Re-requesting the clinic
// already on screen is a no-op; use Refresh to force it.
func (vm *VetDetailViewModel) Load(veterinaryID string) <-chan struct{} {
	vm.mu.Lock()
	same := vm.currentID == veterinaryID
	vm.currentID = veterinaryID
	vm.mu.Unlock()

	if same && vm.State.Get().Phase == PhaseSuccess {
		return closedChan()
	}
	return vm.fetch(veterinaryID)
}

// Refresh re-fetches the clinic currently on screen
func (vm *VetDetailViewModel) Refresh() <-chan struct{} {
	vm.mu.Lock()
	id := vm.currentID
	vm.mu.Unlock()

	if id == "" {
		return closedChan()
	}
	return vm.fetch(id)
}

func (vm *VetDetailViewModel) fetch(veterinaryID string) <-chan struct{} {
	userID := vm.session.UserID()

	return vm.State.Load(vm.scope.Context(), func(ctx context.Context) (VetDetail, error) {
		details, err := vm.clinics.GetWithDetails(ctx, veterinaryID)
		if err != nil {
			return VetDetail{}, err
		}

		isFavorite := false
		if userID != "" {
			favs, err := vm.favorites.List(ctx, userID)
			if err == nil {
				for _, fav := range favs {
					if fav.VeterinaryID == veterinaryID {
						isFavorite = true
						break
					}
				}
			}
		}

		return VetDetail{Details: *details, IsFavorite: isFavorite}, nil
	})
}

// ToggleFavorite flips the bookmark for the clinic on screen and patches the
// Success payload in place.
func (vm *VetDetailViewModel) ToggleFavorite() <-chan struct{} {
	current := vm.State.Get()
	if current.Phase != PhaseSuccess {
		return closedChan()
	}

	userID := vm.session.UserID()
	if userID == "" {
		return closedChan()
	}

	vetID := current.Data.Details.Veterinary.ID
	wasFavorite := current.Data.IsFavorite

	done := make(chan struct{})
	go func() {
		defer close(done)
		ctx := vm.scope.Context()

		var err error
		if wasFavorite {
			err = vm.favorites.Remove(ctx, userID, vetID)
		} else {
			_, err = vm.favorites.Add(ctx, userID, vetID)
		}
		if err != nil {
			return
		}

		latest := vm.State.Get()
		if latest.Phase == PhaseSuccess && latest.Data.Details.Veterinary.ID == vetID {
			latest.Data.IsFavorite = !wasFavorite
			vm.State.Set(latest.Data)
		}
	}()
	return done
}

package viewmodel

import (
	"context"

	"github.com/luciano/vetconnect-go/internal/application/services"
	"github.com/luciano/vetconnect-go/internal/domain/entities"
)

// ReviewsViewModel drives the clinic-side reviews screen.
type ReviewsViewModel struct {
	scope   *Scope
	reviews *services.ReviewService

	State *Holder[[]entities.Review]
}

// NewReviewsViewModel creates the reviews view-model under a screen scope
func NewReviewsViewModel(scope *Scope, reviews *services.ReviewService) *ReviewsViewModel {
	return &ReviewsViewModel{scope: scope, reviews: reviews, State: NewHolder[[]entities.Review]()}
}

// LoadForVeterinary fetches the reviews about one clinic
func (vm *ReviewsViewModel) LoadForVeterinary(veterinaryID string) <-chan struct{} {
	return vm.State.Load(vm.scope.Context(), func(ctx context.Context) ([]entities.Review, error) {
		return vm.reviews.ListByVeterinary(ctx, veterinaryID)
	})
}

// LoadForUser fetches the reviews authored by one user
func (vm *ReviewsViewModel) LoadForUser(userID string) <-chan struct{} {
	return vm.State.Load(vm.scope.Context(), func(ctx context.Context) ([]entities.Review, error) {
		return vm.reviews.ListByUser(ctx, userID)
	})
}

package viewmodel

import (
	"context"
	"strings"
	"sync"

	"github.com/luciano/vetconnect-go/internal/application/services"
	"github.com/luciano/vetconnect-go/internal/domain/entities"
)

// SearchViewModel drives the clinic search screen. Changing the filter
// re-fetches with the new parameters; changing the sort option only reorders
// the rows already on screen.
type SearchViewModel struct {
	scope  *Scope
	search *services.SearchService

	mu        sync.Mutex
	lastQuery string
	filter    entities.FilterOptions
	sort      entities.SortOption

	State *Holder[[]entities.VeterinaryWithServices]
}

// NewSearchViewModel creates the search view-model under a screen scope
func NewSearchViewModel(scope *Scope, search *services.SearchService) *SearchViewModel {
	return &SearchViewModel{
		scope:  scope,
		search: search,
		State:  NewHolder[[]entities.VeterinaryWithServices](),
	}
}

// Search runs a query. A blank query resets to Initial without touching the
// network.
func (vm *SearchViewModel) Search(query string) <-chan struct{} {
	if strings.TrimSpace(query) == "" {
		vm.mu.Lock()
		vm.lastQuery = ""
		vm.mu.Unlock()
		vm.State.Reset()
		return closedChan()
	}

	vm.mu.Lock()
	vm.lastQuery = query
	filter := vm.filter
	sort := vm.sort
	vm.mu.Unlock()

	return vm.State.Load(vm.scope.Context(), func(ctx context.Context) ([]entities.VeterinaryWithServices, error) {
		results, err := vm.search.Search(ctx, query, filter)
		if err != nil {
			return nil, err
		}
		if sort != "" {
			entities.SortResults(results, sort)
		}
		return results, nil
	})
}

// UpdateFilters stores the new filter and re-fetches the current query
func (vm *SearchViewModel) UpdateFilters(filter entities.FilterOptions) <-chan struct{} {
	vm.mu.Lock()
	vm.filter = filter
	query := vm.lastQuery
	vm.mu.Unlock()

	if query == "" {
		return closedChan()
	}
	return vm.Search(query)
}

// UpdateSortOption reorders the current Success payload in place; no fetch
func (vm *SearchViewModel) UpdateSortOption(option entities.SortOption) {
	vm.mu.Lock()
	vm.sort = option
	vm.mu.Unlock()

	current := vm.State.Get()
	if current.Phase != PhaseSuccess {
		return
	}

	sorted := make([]entities.VeterinaryWithServices, len(current.Data))
	copy(sorted, current.Data)
	entities.SortResults(sorted, option)
	vm.State.Set(sorted)
}

// SortOption returns the active sort option
func (vm *SearchViewModel) SortOption() entities.SortOption {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.sort
}

// Filters returns the active filter options
func (vm *SearchViewModel) Filters() entities.FilterOptions {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.filter
}

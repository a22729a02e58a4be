package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
)

func TestSearch_BlankQueryResetsWithoutNetwork(t *testing.T) {
	env := newTestEnv(t)
	vm := NewSearchViewModel(env.scope, env.search)

	<-vm.Search("   ")

	assert.Equal(t, PhaseInitial, vm.State.Get().Phase)
	assert.Zero(t, env.requests.Load(), "a blank query must not reach the network")
}

func TestSearch_BlankQueryClearsPreviousResults(t *testing.T) {
	env := newTestEnv(t)
	vm := NewSearchViewModel(env.scope, env.search)

	<-vm.Search("patitas")
	require.Equal(t, PhaseSuccess, vm.State.Get().Phase)

	<-vm.Search("")
	st := vm.State.Get()
	assert.Equal(t, PhaseInitial, st.Phase)
	assert.Empty(t, st.Data)
}

func TestSearch_MatchesNameSubstring(t *testing.T) {
	env := newTestEnv(t)
	vm := NewSearchViewModel(env.scope, env.search)

	<-vm.Search("patitas")

	st := vm.State.Get()
	require.Equal(t, PhaseSuccess, st.Phase)
	require.Len(t, st.Data, 1)
	assert.Equal(t, "Veterinaria Patitas Felices", st.Data[0].Veterinary.Name)
	assert.NotEmpty(t, st.Data[0].Services)
}

func TestSearch_MatchesAddressCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)
	vm := NewSearchViewModel(env.scope, env.search)

	<-vm.Search("BEGONIAS")

	st := vm.State.Get()
	require.Equal(t, PhaseSuccess, st.Phase)
	require.Len(t, st.Data, 1)
	assert.Equal(t, "vet-003", st.Data[0].Veterinary.ID)
}

func TestSearch_NoMatchesIsSuccessWithEmptyList(t *testing.T) {
	env := newTestEnv(t)
	vm := NewSearchViewModel(env.scope, env.search)

	<-vm.Search("inexistente")

	st := vm.State.Get()
	require.Equal(t, PhaseSuccess, st.Phase)
	assert.Empty(t, st.Data)
}

func TestSearch_UpdateSortOptionReordersWithoutFetch(t *testing.T) {
	env := newTestEnv(t)
	vm := NewSearchViewModel(env.scope, env.search)

	<-vm.Search("veterinaria")
	require.Equal(t, PhaseSuccess, vm.State.Get().Phase)
	before := env.requests.Load()

	vm.UpdateSortOption(entities.SortRatingHigh)

	st := vm.State.Get()
	require.Equal(t, PhaseSuccess, st.Phase)
	for i := 1; i < len(st.Data); i++ {
		assert.GreaterOrEqual(t, st.Data[i-1].Veterinary.Rating, st.Data[i].Veterinary.Rating)
	}
	assert.Equal(t, before, env.requests.Load(), "a sort change must not re-fetch")
}

func TestSearch_UpdateFiltersRerunsLastQuery(t *testing.T) {
	env := newTestEnv(t)
	vm := NewSearchViewModel(env.scope, env.search)

	<-vm.Search("veterinaria")
	require.Equal(t, PhaseSuccess, vm.State.Get().Phase)

	<-vm.UpdateFilters(entities.FilterOptions{MinRating: 4.0})

	st := vm.State.Get()
	require.Equal(t, PhaseSuccess, st.Phase)
	for _, row := range st.Data {
		assert.GreaterOrEqual(t, row.Veterinary.Rating, 4.0)
	}
}

func TestSearch_UpdateFiltersWithoutQueryDoesNothing(t *testing.T) {
	env := newTestEnv(t)
	vm := NewSearchViewModel(env.scope, env.search)

	<-vm.UpdateFilters(entities.FilterOptions{MinRating: 4.0})

	assert.Equal(t, PhaseInitial, vm.State.Get().Phase)
	assert.Zero(t, env.requests.Load())
}

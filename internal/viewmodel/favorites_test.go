package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavorites_RequiresSession(t *testing.T) {
	env := newTestEnv(t)
	vm := NewFavoritesViewModel(env.scope, env.favs, env.session)
	rec := record(vm.State)

	<-vm.Load()

	st := vm.State.Get()
	require.Equal(t, PhaseError, st.Phase)
	assert.Equal(t, "No autorizado", st.Message)
	assert.NotContains(t, rec.Phases(), PhaseLoading)
}

func TestFavorites_LoadsSeededBookmarks(t *testing.T) {
	env := newTestEnv(t)
	signIn(t, env, "maria@correo.com", "cliente123")

	vm := NewFavoritesViewModel(env.scope, env.favs, env.session)
	<-vm.Load()

	st := vm.State.Get()
	require.Equal(t, PhaseSuccess, st.Phase)
	require.Len(t, st.Data, 1)
	assert.Equal(t, "vet-003", st.Data[0].ID)
}

func TestFavorites_RemoveReloadsList(t *testing.T) {
	env := newTestEnv(t)
	signIn(t, env, "maria@correo.com", "cliente123")

	vm := NewFavoritesViewModel(env.scope, env.favs, env.session)
	<-vm.Load()
	require.Len(t, vm.State.Get().Data, 1)

	<-vm.Remove("vet-003")

	st := vm.State.Get()
	require.Equal(t, PhaseSuccess, st.Phase)
	assert.Empty(t, st.Data)
}

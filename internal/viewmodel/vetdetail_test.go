package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signIn(t *testing.T, env *testEnv, email, password string) {
	t.Helper()
	login := NewLoginViewModel(env.scope, env.auth, env.session)
	<-login.Login(email, password)
	require.Equal(t, PhaseSuccess, login.State.Get().Phase)
}

func TestVetDetail_LoadsAggregate(t *testing.T) {
	env := newTestEnv(t)
	vm := NewVetDetailViewModel(env.scope, env.clinics, env.favs, env.session)

	<-vm.Load("vet-001")

	st := vm.State.Get()
	require.Equal(t, PhaseSuccess, st.Phase)
	assert.Equal(t, "Veterinaria Patitas Felices", st.Data.Details.Veterinary.Name)
	assert.Len(t, st.Data.Details.Services, 3)
	assert.Len(t, st.Data.Details.Reviews, 2)
	assert.False(t, st.Data.IsFavorite)
}

func TestVetDetail_UnknownClinic(t *testing.T) {
	env := newTestEnv(t)
	vm := NewVetDetailViewModel(env.scope, env.clinics, env.favs, env.session)

	<-vm.Load("vet-999")

	st := vm.State.Get()
	require.Equal(t, PhaseError, st.Phase)
	assert.Equal(t, "Veterinaria no encontrada", st.Message)
}

func TestVetDetail_SameIDShortCircuits(t *testing.T) {
	env := newTestEnv(t)
	vm := NewVetDetailViewModel(env.scope, env.clinics, env.favs, env.session)

	<-vm.Load("vet-001")
	require.Equal(t, PhaseSuccess, vm.State.Get().Phase)
	before := env.requests.Load()

	<-vm.Load("vet-001")
	assert.Equal(t, before, env.requests.Load(), "reloading the same clinic must be a no-op")

	<-vm.Refresh()
	assert.Greater(t, env.requests.Load(), before)
}

func TestVetDetail_SeededFavoriteIsMarked(t *testing.T) {
	env := newTestEnv(t)
	signIn(t, env, "maria@correo.com", "cliente123")

	vm := NewVetDetailViewModel(env.scope, env.clinics, env.favs, env.session)
	<-vm.Load("vet-003")

	st := vm.State.Get()
	require.Equal(t, PhaseSuccess, st.Phase)
	assert.True(t, st.Data.IsFavorite)
}

func TestVetDetail_ToggleFavorite(t *testing.T) {
	env := newTestEnv(t)
	signIn(t, env, "maria@correo.com", "cliente123")

	vm := NewVetDetailViewModel(env.scope, env.clinics, env.favs, env.session)
	<-vm.Load("vet-001")
	require.False(t, vm.State.Get().Data.IsFavorite)

	<-vm.ToggleFavorite()
	assert.True(t, vm.State.Get().Data.IsFavorite)

	<-vm.ToggleFavorite()
	assert.False(t, vm.State.Get().Data.IsFavorite)
}

func TestVetDetail_ToggleWithoutSessionIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	vm := NewVetDetailViewModel(env.scope, env.clinics, env.favs, env.session)

	<-vm.Load("vet-001")
	<-vm.ToggleFavorite()

	assert.False(t, vm.State.Get().Data.IsFavorite)
}

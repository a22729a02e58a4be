package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterClient_MalformedEmailFailsBeforeLoading(t *testing.T) {
	env := newTestEnv(t)
	vm := NewRegisterViewModel(env.scope, env.auth)
	rec := record(vm.State)

	<-vm.RegisterClient("maria-correo.com", "cliente123", "cliente123",
		"María Torres", "12345678", "987123456", "Av. Brasil 2020")

	st := vm.State.Get()
	require.Equal(t, PhaseError, st.Phase)
	assert.Equal(t, "Correo electrónico inválido", st.Message)
	assert.NotContains(t, rec.Phases(), PhaseLoading)
	assert.Zero(t, env.requests.Load())
}

func TestRegisterClient_MismatchedPasswords(t *testing.T) {
	env := newTestEnv(t)
	vm := NewRegisterViewModel(env.scope, env.auth)
	rec := record(vm.State)

	<-vm.RegisterClient("maria@correo.com", "cliente123", "otraClave9",
		"María Torres", "12345678", "987123456", "Av. Brasil 2020")

	st := vm.State.Get()
	require.Equal(t, PhaseError, st.Phase)
	assert.Equal(t, "Las contraseñas no coinciden", st.Message)
	assert.NotContains(t, rec.Phases(), PhaseLoading)
	assert.Zero(t, env.requests.Load())
}

func TestRegisterClient_WeakPassword(t *testing.T) {
	env := newTestEnv(t)
	vm := NewRegisterViewModel(env.scope, env.auth)

	<-vm.RegisterClient("maria@correo.com", "corta1", "corta1",
		"María Torres", "12345678", "987123456", "Av. Brasil 2020")

	st := vm.State.Get()
	require.Equal(t, PhaseError, st.Phase)
	assert.Equal(t, "La contraseña debe tener al menos 8 caracteres, una letra y un número", st.Message)
}

func TestRegisterClient_Succeeds(t *testing.T) {
	env := newTestEnv(t)
	vm := NewRegisterViewModel(env.scope, env.auth)
	rec := record(vm.State)

	<-vm.RegisterClient("nueva@correo.com", "mascota123", "mascota123",
		"Lucía Quispe", "87654321", "956781234", "Av. La Marina 500")

	st := vm.State.Get()
	require.Equal(t, PhaseSuccess, st.Phase)
	assert.Equal(t, "Registro exitoso", st.Data)
	assert.Equal(t, []Phase{PhaseInitial, PhaseLoading, PhaseSuccess}, rec.Phases())
}

func TestRegisterVeterinary_Succeeds(t *testing.T) {
	env := newTestEnv(t)
	vm := NewRegisterViewModel(env.scope, env.auth)

	<-vm.RegisterVeterinary("nueva@clinica.pe", "clinica456", "clinica456",
		"Clínica Mascotas Sanas", "20987654321", "CMV-99887", "Av. Javier Prado 200", "912876543")

	st := vm.State.Get()
	require.Equal(t, PhaseSuccess, st.Phase)
	assert.Equal(t, "Registro exitoso", st.Data)
}

func TestRegisterVeterinary_BadRUC(t *testing.T) {
	env := newTestEnv(t)
	vm := NewRegisterViewModel(env.scope, env.auth)

	<-vm.RegisterVeterinary("nueva@clinica.pe", "clinica456", "clinica456",
		"Clínica Mascotas Sanas", "123", "CMV-99887", "Av. Javier Prado 200", "912876543")

	st := vm.State.Get()
	require.Equal(t, PhaseError, st.Phase)
	assert.Equal(t, "RUC inválido", st.Message)
	assert.Zero(t, env.requests.Load())
}

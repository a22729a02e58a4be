package main

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luciano/vetconnect-go/internal/adapters/mockdata"
	"github.com/luciano/vetconnect-go/internal/application/services"
	"github.com/luciano/vetconnect-go/internal/infrastructure/clients/vetapi"
	"github.com/luciano/vetconnect-go/internal/mockapi"
	"github.com/luciano/vetconnect-go/internal/session"
	"github.com/luciano/vetconnect-go/internal/viewmodel"
)

// newTestApp wires the shell over the embedded mock backend, mirroring the
// mock branch of buildRepositories.
func newTestApp(t *testing.T) *app {
	t.Helper()

	server := httptest.NewServer(mockapi.NewServer().Handler())
	t.Cleanup(server.Close)

	client := vetapi.NewClient(server.URL)
	source := mockdata.NewSource(client, mockdata.DefaultDocumentPaths())
	sess := session.NewManager(filepath.Join(t.TempDir(), "session.json"))

	repos := repoSet{
		auth:      mockdata.NewAuthAdapter(source),
		vets:      mockdata.NewVeterinaryAdapter(source),
		services:  mockdata.NewServiceAdapter(source),
		reviews:   mockdata.NewReviewAdapter(source),
		favorites: mockdata.NewFavoriteAdapter(source),
		users:     mockdata.NewUserAdapter(source),
	}

	authService := services.NewAuthService(repos.auth)
	vetService := services.NewVetCenterService(repos.vets, repos.services, repos.reviews)
	searchService := services.NewSearchService(repos.vets, repos.services)
	favoriteService := services.NewFavoriteService(repos.favorites, repos.vets)
	reviewService := services.NewReviewService(repos.reviews)

	scope := viewmodel.NewScope(context.Background())
	t.Cleanup(scope.Close)

	return &app{
		session:   sess,
		login:     viewmodel.NewLoginViewModel(scope, authService, sess),
		register:  viewmodel.NewRegisterViewModel(scope, authService),
		search:    viewmodel.NewSearchViewModel(scope, searchService),
		detail:    viewmodel.NewVetDetailViewModel(scope, vetService, favoriteService, sess),
		favorites: viewmodel.NewFavoritesViewModel(scope, favoriteService, sess),
		reviews:   viewmodel.NewReviewsViewModel(scope, reviewService),
		profile:   viewmodel.NewVetProfileViewModel(scope, vetService, sess),
		account:   viewmodel.NewProfileViewModel(scope, repos.users, sess),
		password:  viewmodel.NewChangePasswordViewModel(scope, authService, sess),
		services:  viewmodel.NewVetServicesViewModel(scope, vetService),
	}
}

func TestDispatch_RegisterClient(t *testing.T) {
	a := newTestApp(t)

	a.dispatch("register", []string{
		"nueva@correo.com", "clave1234", "clave1234",
		"Ana", "87654321", "987654321", "Av. Central 12",
	})

	st := a.register.State.Get()
	require.Equal(t, viewmodel.PhaseSuccess, st.Phase)
	assert.Equal(t, "Registro exitoso", st.Data)
}

func TestDispatch_RegisterRejectsBadEmail(t *testing.T) {
	a := newTestApp(t)

	a.dispatch("register", []string{
		"no-es-correo", "clave1234", "clave1234",
		"Ana", "87654321", "987654321",
	})

	st := a.register.State.Get()
	require.Equal(t, viewmodel.PhaseError, st.Phase)
	assert.Equal(t, "Correo electrónico inválido", st.Message)
}

func TestDispatch_RegisterVeterinary(t *testing.T) {
	a := newTestApp(t)

	a.dispatch("registervet", []string{
		"clinica@nueva.com", "clave1234", "clave1234",
		"Clínica", "12345678901", "CMV-999", "987654321", "Av. Norte 5",
	})

	st := a.register.State.Get()
	require.Equal(t, viewmodel.PhaseSuccess, st.Phase)
	assert.Equal(t, "Registro exitoso", st.Data)
}

func TestDispatch_ChangePasswordRequiresSession(t *testing.T) {
	a := newTestApp(t)

	a.dispatch("password", []string{"vieja1234", "nueva1234", "nueva1234"})

	st := a.password.State.Get()
	require.Equal(t, viewmodel.PhaseError, st.Phase)
	assert.Equal(t, "No autorizado", st.Message)
}

func TestDispatch_AccountRequiresSession(t *testing.T) {
	a := newTestApp(t)

	a.dispatch("account", nil)

	st := a.account.State.Get()
	require.Equal(t, viewmodel.PhaseError, st.Phase)
	assert.Equal(t, "No se encontró la información del usuario", st.Message)
}

func TestDispatch_ServicesListsClinic(t *testing.T) {
	a := newTestApp(t)

	a.dispatch("services", []string{"vet-001"})

	st := a.services.State.Get()
	require.Equal(t, viewmodel.PhaseSuccess, st.Phase)
	assert.Len(t, st.Data, 3)
}

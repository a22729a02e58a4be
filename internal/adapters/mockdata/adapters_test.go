package mockdata

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
	"github.com/luciano/vetconnect-go/internal/infrastructure/clients/vetapi"
	"github.com/luciano/vetconnect-go/internal/mockapi"
	apperrors "github.com/luciano/vetconnect-go/pkg/errors"
)

func newTestSource(t *testing.T) *Source {
	t.Helper()
	server := httptest.NewServer(mockapi.NewServer().Handler())
	t.Cleanup(server.Close)
	client := vetapi.NewClient(server.URL)
	return NewSource(client, DefaultDocumentPaths())
}

func TestAuthAdapter_SignInSeededCredentials(t *testing.T) {
	auth := NewAuthAdapter(newTestSource(t))

	sess, err := auth.SignIn(context.Background(), "maria@correo.com", "cliente123")
	require.NoError(t, err)
	assert.Equal(t, "mock-token", sess.Token)
	assert.Equal(t, "usr-001", sess.User.ID)
	assert.False(t, sess.User.IsVeterinary())

	sess, err = auth.SignIn(context.Background(), "patitas@vet.com", "clinica123")
	require.NoError(t, err)
	assert.True(t, sess.User.IsVeterinary())
	assert.Equal(t, "vet-001", sess.User.VeterinaryID)
}

func TestAuthAdapter_SignInRejectsNonMatching(t *testing.T) {
	auth := NewAuthAdapter(newTestSource(t))

	_, err := auth.SignIn(context.Background(), "maria@correo.com", "claveIncorrecta1")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
	assert.Equal(t, "Credenciales inválidas", apperrors.UserMessage(err))

	_, err = auth.SignIn(context.Background(), "nadie@correo.com", "cliente123")
	require.Error(t, err)
	assert.Equal(t, "Credenciales inválidas", apperrors.UserMessage(err))
}

func TestVeterinaryAdapter_SearchBlankMatchesAll(t *testing.T) {
	vets := NewVeterinaryAdapter(newTestSource(t))

	all, err := vets.Search(context.Background(), "  ")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestVeterinaryAdapter_GetByIDUnknown(t *testing.T) {
	vets := NewVeterinaryAdapter(newTestSource(t))

	_, err := vets.GetByID(context.Background(), "vet-999")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestServiceAdapter_OverlaySurvivesRefetch(t *testing.T) {
	source := newTestSource(t)
	services := NewServiceAdapter(source)

	created, err := services.Create(context.Background(), entities.VeterinaryService{
		VeterinaryID: "vet-001",
		Name:         "Ecografía",
		Price:        180,
		Category:     entities.CategoryDiagnostico,
		IsActive:     true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	// the created service shows up alongside the seeded ones
	list, err := services.ListByVeterinary(context.Background(), "vet-001")
	require.NoError(t, err)
	assert.Len(t, list, 4)

	// updates overlay the seeded record
	seeded, err := services.GetByID(context.Background(), "svc-001")
	require.NoError(t, err)
	seeded.Price = 75
	_, err = services.Update(context.Background(), *seeded)
	require.NoError(t, err)

	refetched, err := services.GetByID(context.Background(), "svc-001")
	require.NoError(t, err)
	assert.Equal(t, 75.0, refetched.Price)

	// deletes tombstone it
	require.NoError(t, services.Delete(context.Background(), "svc-001"))
	_, err = services.GetByID(context.Background(), "svc-001")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestServiceAdapter_UpdateUnknownFails(t *testing.T) {
	services := NewServiceAdapter(newTestSource(t))

	_, err := services.Update(context.Background(), entities.VeterinaryService{ID: "svc-999"})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestReviewAdapter_CreateValidatesRating(t *testing.T) {
	reviews := NewReviewAdapter(newTestSource(t))

	for _, rating := range []int{0, 6, -1} {
		_, err := reviews.Create(context.Background(), entities.Review{
			VeterinaryID: "vet-001",
			UserID:       "usr-001",
			Rating:       rating,
		})
		require.Error(t, err, "rating %d", rating)
		assert.Equal(t, "La calificación debe estar entre 1 y 5", apperrors.UserMessage(err))
	}

	created, err := reviews.Create(context.Background(), entities.Review{
		VeterinaryID: "vet-001",
		UserID:       "usr-001",
		Rating:       4,
		Comment:      "Muy buena atención",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)

	list, err := reviews.ListByVeterinary(context.Background(), "vet-001")
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestFavoriteAdapter_OverlayCreateDelete(t *testing.T) {
	favorites := NewFavoriteAdapter(newTestSource(t))

	created, err := favorites.Create(context.Background(), "usr-002", "vet-001")
	require.NoError(t, err)

	list, err := favorites.ListByUser(context.Background(), "usr-002")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "vet-001", list[0].VeterinaryID)

	require.NoError(t, favorites.Delete(context.Background(), created.ID))
	list, err = favorites.ListByUser(context.Background(), "usr-002")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUserAdapter_GetByID(t *testing.T) {
	users := NewUserAdapter(newTestSource(t))

	user, err := users.GetByID(context.Background(), "usr-001")
	require.NoError(t, err)
	assert.Equal(t, "maria@correo.com", user.Email)

	_, err = users.GetByID(context.Background(), "usr-999")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

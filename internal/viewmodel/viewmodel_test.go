package viewmodel

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/luciano/vetconnect-go/internal/adapters/mockdata"
	"github.com/luciano/vetconnect-go/internal/application/services"
	"github.com/luciano/vetconnect-go/internal/infrastructure/clients/vetapi"
	"github.com/luciano/vetconnect-go/internal/mockapi"
	"github.com/luciano/vetconnect-go/internal/session"
)

// testEnv wires the whole stack against the seeded mock endpoint set:
// HTTP server, document source, adapters, services and a fresh session.
type testEnv struct {
	scope    *Scope
	session  *session.Manager
	auth     *services.AuthService
	search   *services.SearchService
	clinics  *services.VetCenterService
	favs     *services.FavoriteService
	reviews  *services.ReviewService
	requests *atomic.Int64
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	var requests atomic.Int64
	inner := mockapi.NewServer().Handler()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		inner.ServeHTTP(w, r)
	}))
	t.Cleanup(server.Close)

	client := vetapi.NewClient(server.URL)
	source := mockdata.NewSource(client, mockdata.DefaultDocumentPaths())

	authRepo := mockdata.NewAuthAdapter(source)
	vetRepo := mockdata.NewVeterinaryAdapter(source)
	svcRepo := mockdata.NewServiceAdapter(source)
	reviewRepo := mockdata.NewReviewAdapter(source)
	favRepo := mockdata.NewFavoriteAdapter(source)

	scope := NewScope(context.Background())
	t.Cleanup(scope.Close)

	return &testEnv{
		scope:    scope,
		session:  session.NewManager(filepath.Join(t.TempDir(), "session.json")),
		auth:     services.NewAuthService(authRepo),
		search:   services.NewSearchService(vetRepo, svcRepo),
		clinics:  services.NewVetCenterService(vetRepo, svcRepo, reviewRepo),
		favs:     services.NewFavoriteService(favRepo, vetRepo),
		reviews:  services.NewReviewService(reviewRepo),
		requests: &requests,
	}
}

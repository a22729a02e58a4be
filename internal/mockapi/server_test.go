package mockapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
)

func TestServer_ServesAllDocuments(t *testing.T) {
	server := httptest.NewServer(NewServer().Handler())
	defer server.Close()

	for route := range documents {
		resp, err := http.Get(server.URL + route)
		require.NoError(t, err, route)
		assert.Equal(t, http.StatusOK, resp.StatusCode, route)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"), route)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body), route)
		resp.Body.Close()
		assert.NotEmpty(t, body, route)
	}
}

func TestServer_SeedShapesDecode(t *testing.T) {
	var vets entities.VeterinaryDocument
	require.NoError(t, SeedDocument("/v1/veterinaries", &vets))
	require.Len(t, vets.Veterinaries, 3)

	var services entities.ServiceDocument
	require.NoError(t, SeedDocument("/v1/services", &services))
	assert.NotEmpty(t, services.Services)

	var users entities.UserDocument
	require.NoError(t, SeedDocument("/v1/users", &users))
	assert.NotEmpty(t, users.Users)
	assert.NotEmpty(t, users.Credentials.Clients)
	assert.NotEmpty(t, users.Credentials.Veterinaries)

	// every seeded service belongs to a seeded clinic
	known := map[string]bool{}
	for _, v := range vets.Veterinaries {
		known[v.ID] = true
	}
	for _, s := range services.Services {
		assert.True(t, known[s.VeterinaryID], s.ID)
	}
}

func TestServer_UnknownRouteIs404(t *testing.T) {
	server := httptest.NewServer(NewServer().Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/v1/desconocido")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

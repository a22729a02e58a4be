package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
)

func testSession() *entities.Session {
	return &entities.Session{
		Token: "mock-token",
		User: entities.User{
			ID:    "usr-001",
			Name:  "María Torres",
			Email: "maria@correo.com",
			Role:  entities.RoleClient,
		},
	}
}

func TestManager_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	m := NewManager(path)
	require.NoError(t, m.SetSession(testSession()))
	require.NoError(t, m.SetVetCenterID("vet-001"))

	reloaded := NewManager(path)
	assert.True(t, reloaded.IsLoggedIn())
	assert.Equal(t, "mock-token", reloaded.Token())
	assert.Equal(t, "usr-001", reloaded.UserID())
	assert.Equal(t, "vet-001", reloaded.VetCenterID())
	require.NotNil(t, reloaded.Session())
	assert.Equal(t, "maria@correo.com", reloaded.Session().User.Email)
}

func TestManager_ClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	m := NewManager(path)
	require.NoError(t, m.SetSession(testSession()))
	require.NoError(t, m.Clear())

	assert.False(t, m.IsLoggedIn())
	assert.Empty(t, m.Token())
	assert.Empty(t, m.UserID())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// clearing an already-clean manager is not an error
	require.NoError(t, m.Clear())
}

func TestManager_DiscardsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	m := NewManager(path)
	assert.False(t, m.IsLoggedIn())
	assert.Empty(t, m.Token())
}

func TestManager_StartsSignedOut(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "session.json"))
	assert.False(t, m.IsLoggedIn())
	assert.False(t, m.IsVetUser())
	assert.Nil(t, m.Session())
	assert.True(t, m.TokenExpired())
}

func TestManager_IsVetUser(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "session.json"))

	sess := testSession()
	sess.User.Role = entities.RoleVeterinary
	require.NoError(t, m.SetSession(sess))

	assert.True(t, m.IsVetUser())
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "usr-001",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestManager_TokenExpired(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "session.json"))

	sess := testSession()
	sess.Token = signedToken(t, time.Now().Add(-time.Hour))
	require.NoError(t, m.SetSession(sess))
	assert.True(t, m.TokenExpired())

	sess.Token = signedToken(t, time.Now().Add(time.Hour))
	require.NoError(t, m.SetSession(sess))
	assert.False(t, m.TokenExpired())
}

func TestManager_OpaqueTokenNeverExpires(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, m.SetSession(testSession()))
	assert.False(t, m.TokenExpired())
}

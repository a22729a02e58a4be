package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
)

// persisted is the single key-value blob written to disk: the serialized
// authenticated user, the bearer token and, for clinic accounts, the clinic's
// ID.
type persisted struct {
	Session     *entities.Session `json:"session,omitempty"`
	Token       string            `json:"token,omitempty"`
	VetCenterID string            `json:"vetCenterId,omitempty"`
}

// Manager holds the authenticated session, mirrored to a file so the next
// launch starts signed in. All reads and writes go through one mutex; the
// file write is atomic (write-temp-then-rename).
type Manager struct {
	mu    sync.RWMutex
	path  string
	state persisted
}

// NewManager creates a manager over the given file path, loading any
// previously persisted session. A corrupt file is discarded.
func NewManager(path string) *Manager {
	m := &Manager{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return m
	}
	if err := json.Unmarshal(data, &m.state); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("discarding corrupt session file")
		m.state = persisted{}
		_ = os.Remove(path)
	}
	return m
}

// SetSession stores the authenticated session and persists it
func (m *Manager) SetSession(session *entities.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Session = session
	m.state.Token = session.Token
	return m.flushLocked()
}

// SetVetCenterID stores the clinic ID for a clinic account
func (m *Manager) SetVetCenterID(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.VetCenterID = id
	return m.flushLocked()
}

// Session returns the current session, nil when signed out
func (m *Manager) Session() *entities.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Session
}

// Token returns the bearer token, empty when signed out
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Token
}

// VetCenterID returns the stored clinic ID, empty when absent
func (m *Manager) VetCenterID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.VetCenterID
}

// UserID returns the signed-in user's ID, empty when signed out
func (m *Manager) UserID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state.Session == nil {
		return ""
	}
	return m.state.Session.User.ID
}

// IsLoggedIn reports whether a session with a token is present
func (m *Manager) IsLoggedIn() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Session != nil && m.state.Token != ""
}

// IsVetUser reports whether the signed-in account is a clinic
func (m *Manager) IsVetUser() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Session != nil && m.state.Session.User.Role == entities.RoleVeterinary
}

// TokenExpired inspects the stored token's exp claim without verifying the
// signature; verification belongs to the backend. Opaque tokens (the mock
// backend's) are treated as non-expiring.
func (m *Manager) TokenExpired() bool {
	token := m.Token()
	if token == "" {
		return true
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// Clear wipes the session and removes the persisted file
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = persisted{}
	if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (m *Manager) flushLocked() error {
	data, err := json.Marshal(m.state)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0o700); err != nil {
		return err
	}

	tmp := m.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, m.path)
}

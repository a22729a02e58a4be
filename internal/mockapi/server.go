// Package mockapi serves a fixed sample dataset over the same wire shapes
// the client consumes, so the app can run end to end without the real
// backend. Writes are accepted but never persisted here; the client keeps
// its own in-memory overlay.
package mockapi

import (
	"embed"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

//go:embed seed/*.json
var seedFS embed.FS

// documents maps each route to its embedded seed file
var documents = map[string]string{
	"/v1/veterinaries": "seed/veterinaries.json",
	"/v1/services":     "seed/services.json",
	"/v1/reviews":      "seed/reviews.json",
	"/v1/users":        "seed/users.json",
	"/v1/favorites":    "seed/favorites.json",
}

// Server serves the seed documents over HTTP
type Server struct {
	router chi.Router
}

// NewServer builds the mock endpoint set
func NewServer() *Server {
	s := &Server{}

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)

	for route, file := range documents {
		r.Get(route, s.serveDocument(file))
	}
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	s.router = r
	return s
}

// Handler exposes the router for mounting or for test servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) serveDocument(file string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := seedFS.ReadFile(file)
		if err != nil {
			log.Error().Err(err).Str("file", file).Msg("seed document missing")
			http.Error(w, "document not found", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(raw)
	}
}

// SeedDocument parses one embedded seed file into out. Handy for tests that
// need the dataset without going through HTTP.
func SeedDocument(route string, out any) error {
	file, ok := documents[route]
	if !ok {
		return json.Unmarshal([]byte("{}"), out)
	}
	raw, err := seedFS.ReadFile(file)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// Package server exposes a spillover cache over HTTP. The engine is
// single-threaded by contract, so the server serializes every cache
// operation through one mutex — the external synchronization the engine
// requires.
package server

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tailored-agentic-units/spillover/cache"
)

// Server wraps a Cache of string keys and raw byte values.
type Server struct {
	mu    sync.Mutex
	cache *cache.Cache[string, []byte]
	log   *slog.Logger
	h     http.Handler
}

// New creates a Server around c.
func New(c *cache.Cache[string, []byte], logger *slog.Logger) *Server {
	s := &Server{cache: c, log: logger}

	r := chi.NewRouter()
	r.Use(accessLog(logger))
	r.Get("/health", handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/stats", wrap(s.stats))
	r.Get("/values", wrap(s.values))
	r.Get("/entries", wrap(s.entries))
	r.Route("/kvs", func(r chi.Router) {
		r.Get("/", wrap(s.listKeys))
		r.Delete("/", wrap(s.clear))
		r.Get("/{key}", wrap(s.get))
		r.Put("/{key}", wrap(s.put))
		r.Delete("/{key}", wrap(s.del))
	})
	s.h = r
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.h }

type healthResponse struct {
	Status string `json:"status"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

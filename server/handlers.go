package server

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/tailored-agentic-units/spillover/cache"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			writeError(w, err)
		}
	}
}

type valueRequest struct {
	Value string `json:"value"`
}

type valueDTO struct {
	Key   string `json:"key"`
	Value string `json:"value,omitempty"`
}

type keysDTO struct {
	Keys []string `json:"keys"`
}

type statsDTO struct {
	Size int `json:"size"`
	cache.Stats
	HitRatePct float64 `json:"hit_rate_pct"`
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) error {
	key := chi.URLParam(r, "key")
	if key == "" {
		return badRequest("empty key")
	}
	s.mu.Lock()
	value, ok, err := s.cache.Get(key)
	s.mu.Unlock()
	if err != nil {
		return fromCacheError(err)
	}
	if !ok {
		return notFound("key not found")
	}
	writeSuccess(w, http.StatusOK, valueDTO{Key: key, Value: string(value)})
	return nil
}

func (s *Server) put(w http.ResponseWriter, r *http.Request) error {
	key := chi.URLParam(r, "key")
	if key == "" {
		return badRequest("empty key")
	}
	var req valueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return badRequest("invalid json")
	}
	s.mu.Lock()
	_, _, err := s.cache.Put(key, []byte(req.Value))
	s.mu.Unlock()
	if err != nil {
		return fromCacheError(err)
	}
	writeSuccess(w, http.StatusOK, valueDTO{Key: key, Value: req.Value})
	return nil
}

func (s *Server) del(w http.ResponseWriter, r *http.Request) error {
	key := chi.URLParam(r, "key")
	if key == "" {
		return badRequest("empty key")
	}
	s.mu.Lock()
	_, ok, err := s.cache.Remove(key)
	s.mu.Unlock()
	if err != nil {
		return fromCacheError(err)
	}
	if !ok {
		return notFound("key not found")
	}
	writeSuccess(w, http.StatusOK, valueDTO{Key: key})
	return nil
}

func (s *Server) listKeys(w http.ResponseWriter, r *http.Request) error {
	s.mu.Lock()
	keys := s.cache.Keys()
	s.mu.Unlock()
	sort.Strings(keys)
	writeSuccess(w, http.StatusOK, keysDTO{Keys: keys})
	return nil
}

func (s *Server) clear(w http.ResponseWriter, r *http.Request) error {
	s.mu.Lock()
	err := s.cache.Clear()
	s.mu.Unlock()
	if err != nil {
		return fromCacheError(err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) error {
	s.mu.Lock()
	st := s.cache.Stats()
	size := s.cache.Len()
	s.mu.Unlock()
	writeSuccess(w, http.StatusOK, statsDTO{Size: size, Stats: st, HitRatePct: st.HitRate()})
	return nil
}

// values surfaces the engine's deliberate capability gap as a 501 rather
// than pretending the view exists.
func (s *Server) values(w http.ResponseWriter, r *http.Request) error {
	s.mu.Lock()
	_, err := s.cache.Values()
	s.mu.Unlock()
	return fromCacheError(err)
}

func (s *Server) entries(w http.ResponseWriter, r *http.Request) error {
	s.mu.Lock()
	_, err := s.cache.Entries()
	s.mu.Unlock()
	return fromCacheError(err)
}

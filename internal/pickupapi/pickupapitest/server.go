// Package pickupapitest provides an in-memory stand-in for the /pickups collaborator.
// PATCH merges the body into the stored record, as json-server does.
package pickupapitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"

	"github.com/DWARA-KESH/EpiCircleDemo/internal/entities"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/pickupapi"
	"github.com/go-chi/chi/v5"
)

type Server struct {
	*httptest.Server

	mu      sync.Mutex
	pickups map[string]pickupapi.Pickup
	failing bool
	calls   map[string]int

	// AfterPatch, when set, runs after a PATCH is applied and before it is
	// answered. Tests use it to simulate a concurrent writer.
	AfterPatch func(id string)
}

func NewServer() *Server {
	s := &Server{
		pickups: make(map[string]pickupapi.Pickup),
		calls:   make(map[string]int),
	}

	r := chi.NewRouter()
	r.Use(s.failures)
	r.Get("/pickups", s.list)
	r.Post("/pickups", s.create)
	r.Get("/pickups/{id}", s.get)
	r.Patch("/pickups/{id}", s.patch)

	s.Server = httptest.NewServer(r)
	return s
}

// Put stores p as is, replacing any record with the same id.
func (s *Server) Put(p entities.Pickup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pickups[p.ID] = pickupapi.PickupEntityToJSON(p)
}

func (s *Server) Pickup(id string) (entities.Pickup, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pickups[id]
	return pickupapi.PickupJSONToEntity(p), ok
}

// SetFailing makes every request answer 503 until switched off.
func (s *Server) SetFailing(failing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing = failing
}

// Calls returns how many requests hit the route, e.g. "GET /pickups/{id}".
func (s *Server) Calls(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[route]
}

func (s *Server) failures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		failing := s.failing
		s.mu.Unlock()
		if failing {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		next.ServeHTTP(w, r)

		route := r.Method + " " + r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = r.Method + " " + rc.RoutePattern()
		}
		s.mu.Lock()
		s.calls[route]++
		s.mu.Unlock()
	})
}

func (s *Server) list(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	out := make([]pickupapi.Pickup, 0, len(s.pickups))
	for _, p := range s.pickups {
		out = append(out, p)
	}
	s.mu.Unlock()

	// insertion order is not kept; callers must sort
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	writeJSON(w, out, http.StatusOK)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	p, ok := s.pickups[id]
	s.mu.Unlock()
	if !ok {
		writeJSON(w, map[string]string{}, http.StatusNotFound)
		return
	}
	writeJSON(w, p, http.StatusOK)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var p pickupapi.Pickup
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.ID == "" {
		http.Error(w, "bad pickup", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.pickups[p.ID]; exists {
		http.Error(w, "duplicate id", http.StatusInternalServerError)
		return
	}
	s.pickups[p.ID] = p
	writeJSON(w, p, http.StatusCreated)
}

func (s *Server) patch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var body pickupapi.Patch
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "bad patch", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	p, ok := s.pickups[id]
	if !ok {
		s.mu.Unlock()
		writeJSON(w, map[string]string{}, http.StatusNotFound)
		return
	}
	merged := pickupapi.PickupJSONToEntity(p).Apply(pickupapi.PatchJSONToEntity(body))
	s.pickups[id] = pickupapi.PickupEntityToJSON(merged)
	out := s.pickups[id]
	s.mu.Unlock()

	if s.AfterPatch != nil {
		s.AfterPatch(id)
	}
	writeJSON(w, out, http.StatusOK)
}

func writeJSON(w http.ResponseWriter, v any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

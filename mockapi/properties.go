package mockapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/wishcowork/sitekit/core/catalog"
	"github.com/wishcowork/sitekit/pkg/slug"
)

// Property responses use the {data: ...} envelope, matching the production
// backend this server stands in for.

func (s *Server) handleListProperties(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if id := q.Get("id"); id != "" {
		if p, ok := s.findProperty(func(p catalog.Property) bool { return p.ID == id }); ok {
			s.writeJSON(w, http.StatusOK, map[string]any{"data": p})
			return
		}
		s.writeError(w, http.StatusNotFound, "property not found")
		return
	}

	if sl := q.Get("slug"); sl != "" {
		if p, ok := s.findProperty(func(p catalog.Property) bool { return strings.EqualFold(p.Slug, sl) }); ok {
			s.writeJSON(w, http.StatusOK, map[string]any{"data": p})
			return
		}
		s.writeError(w, http.StatusNotFound, "property not found")
		return
	}

	category := q.Get("category")
	city := q.Get("city")
	featured := q.Get("featured") == "true"
	search := strings.ToLower(q.Get("search"))

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	out := make([]catalog.Property, 0, len(s.store.properties))
	for _, p := range s.store.properties {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if city != "" && !strings.EqualFold(p.City, city) {
			continue
		}
		if featured && !p.Featured {
			continue
		}
		if search != "" && !propertyMatches(p, search) {
			continue
		}
		out = append(out, p)
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"data": out})
}

func propertyMatches(p catalog.Property, search string) bool {
	for _, field := range []string{p.Title, p.City, p.Category, p.Description} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func (s *Server) findProperty(match func(catalog.Property) bool) (catalog.Property, bool) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	for _, p := range s.store.properties {
		if match(p) {
			return p, true
		}
	}
	return catalog.Property{}, false
}

func (s *Server) handleCreateProperty(w http.ResponseWriter, r *http.Request) {
	var p catalog.Property
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if p.Title == "" {
		s.writeJSON(w, http.StatusOK, mutationResponse{Message: "title is required"})
		return
	}
	p.ID = uuid.NewString()
	if p.Slug == "" {
		p.Slug = slug.Make(p.Title)
	}

	s.store.mu.Lock()
	s.store.properties = append(s.store.properties, p)
	s.store.mu.Unlock()

	s.writeJSON(w, http.StatusOK, mutationResponse{Success: true, Message: "property created", PropertyID: p.ID})
}

func (s *Server) handleUpdateProperty(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	var patch catalog.Property
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i, p := range s.store.properties {
		if p.ID == id {
			patch.ID = id
			s.store.properties[i] = patch
			s.writeJSON(w, http.StatusOK, mutationResponse{Success: true, Message: "property updated"})
			return
		}
	}
	s.writeJSON(w, http.StatusOK, mutationResponse{Message: "property not found"})
}

func (s *Server) handleDeleteProperty(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i, p := range s.store.properties {
		if p.ID == id {
			s.store.properties = append(s.store.properties[:i], s.store.properties[i+1:]...)
			s.writeJSON(w, http.StatusOK, mutationResponse{Success: true, Message: "property deleted"})
			return
		}
	}
	s.writeJSON(w, http.StatusOK, mutationResponse{Message: "property not found"})
}

package mockapi

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/wishcowork/sitekit/core/views"
)

type trackViewRequest struct {
	PropertyID string `json:"property_id"`
}

func (s *Server) handleTrackView(w http.ResponseWriter, r *http.Request) {
	var req trackViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PropertyID == "" {
		s.writeError(w, http.StatusBadRequest, "property_id is required")
		return
	}

	s.store.mu.Lock()
	s.store.views[req.PropertyID]++
	s.store.mu.Unlock()

	s.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleViewStats(w http.ResponseWriter, r *http.Request) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	if propertyID := r.URL.Query().Get("property_id"); propertyID != "" {
		s.writeJSON(w, http.StatusOK, views.Stats{
			Success:    true,
			TotalViews: s.store.views[propertyID],
		})
		return
	}

	stats := views.Stats{Success: true}
	for id, count := range s.store.views {
		stats.TotalViews += count
		stats.PropertiesViewed++
		title := ""
		for _, p := range s.store.properties {
			if p.ID == id {
				title = p.Title
				break
			}
		}
		stats.TopProperties = append(stats.TopProperties, views.TopProperty{
			PropertyID: id,
			Title:      title,
			Views:      count,
		})
	}
	sort.Slice(stats.TopProperties, func(i, j int) bool {
		return stats.TopProperties[i].Views > stats.TopProperties[j].Views
	})
	if len(stats.TopProperties) > 5 {
		stats.TopProperties = stats.TopProperties[:5]
	}
	s.writeJSON(w, http.StatusOK, stats)
}

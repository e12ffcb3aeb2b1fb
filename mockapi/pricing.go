package mockapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/wishcowork/sitekit/core/pricing"
)

// Pricing endpoints respond with bare arrays and address records by the
// "?id=" query parameter (or the id carried in the body for updates).

func activeParam(r *http.Request) *bool {
	switch r.URL.Query().Get("active") {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}

func queryID(r *http.Request) int {
	id, _ := strconv.Atoi(r.URL.Query().Get("id"))
	return id
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	active := activeParam(r)
	s.store.mu.RLock()
	out := make([]pricing.Plan, 0, len(s.store.plans))
	for _, p := range s.store.plans {
		if active != nil && *active && !p.IsActive {
			continue
		}
		out = append(out, p)
	}
	s.store.mu.RUnlock()
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var p pricing.Plan
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if p.Name == "" {
		s.writeJSON(w, http.StatusOK, mutationResponse{Message: "name is required"})
		return
	}

	s.store.mu.Lock()
	p.ID = s.store.nextPlanID
	s.store.nextPlanID++
	s.store.plans = append(s.store.plans, p)
	s.store.mu.Unlock()

	s.writeJSON(w, http.StatusOK, mutationResponse{Success: true, Message: "plan created", ID: strconv.Itoa(p.ID)})
}

func (s *Server) handleUpdatePlan(w http.ResponseWriter, r *http.Request) {
	var p pricing.Plan
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	id := queryID(r)
	if id == 0 {
		id = p.ID
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i, existing := range s.store.plans {
		if existing.ID == id {
			p.ID = id
			s.store.plans[i] = p
			s.writeJSON(w, http.StatusOK, mutationResponse{Success: true, Message: "plan updated"})
			return
		}
	}
	s.writeJSON(w, http.StatusOK, mutationResponse{Message: "plan not found"})
}

func (s *Server) handleDeletePlan(w http.ResponseWriter, r *http.Request) {
	id := queryID(r)
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i, p := range s.store.plans {
		if p.ID == id {
			s.store.plans = append(s.store.plans[:i], s.store.plans[i+1:]...)
			s.writeJSON(w, http.StatusOK, mutationResponse{Success: true, Message: "plan deleted"})
			return
		}
	}
	s.writeJSON(w, http.StatusOK, mutationResponse{Message: "plan not found"})
}

func (s *Server) handleListAddons(w http.ResponseWriter, r *http.Request) {
	active := activeParam(r)
	s.store.mu.RLock()
	out := make([]pricing.AddonService, 0, len(s.store.addons))
	for _, a := range s.store.addons {
		if active != nil && *active && !a.IsActive {
			continue
		}
		out = append(out, a)
	}
	s.store.mu.RUnlock()
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateAddon(w http.ResponseWriter, r *http.Request) {
	var a pricing.AddonService
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if a.Name == "" {
		s.writeJSON(w, http.StatusOK, mutationResponse{Message: "name is required"})
		return
	}

	s.store.mu.Lock()
	a.ID = s.store.nextAddonID
	s.store.nextAddonID++
	s.store.addons = append(s.store.addons, a)
	s.store.mu.Unlock()

	s.writeJSON(w, http.StatusOK, mutationResponse{Success: true, Message: "service created", ID: strconv.Itoa(a.ID)})
}

func (s *Server) handleUpdateAddon(w http.ResponseWriter, r *http.Request) {
	var a pricing.AddonService
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	id := queryID(r)
	if id == 0 {
		id = a.ID
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i, existing := range s.store.addons {
		if existing.ID == id {
			a.ID = id
			s.store.addons[i] = a
			s.writeJSON(w, http.StatusOK, mutationResponse{Success: true, Message: "service updated"})
			return
		}
	}
	s.writeJSON(w, http.StatusOK, mutationResponse{Message: "service not found"})
}

func (s *Server) handleDeleteAddon(w http.ResponseWriter, r *http.Request) {
	id := queryID(r)
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i, a := range s.store.addons {
		if a.ID == id {
			s.store.addons = append(s.store.addons[:i], s.store.addons[i+1:]...)
			s.writeJSON(w, http.StatusOK, mutationResponse{Success: true, Message: "service deleted"})
			return
		}
	}
	s.writeJSON(w, http.StatusOK, mutationResponse{Message: "service not found"})
}

func (s *Server) handleListFAQs(w http.ResponseWriter, r *http.Request) {
	active := activeParam(r)
	s.store.mu.RLock()
	out := make([]pricing.FAQ, 0, len(s.store.faqs))
	for _, f := range s.store.faqs {
		if active != nil && *active && !f.IsActive {
			continue
		}
		out = append(out, f)
	}
	s.store.mu.RUnlock()
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateFAQ(w http.ResponseWriter, r *http.Request) {
	var f pricing.FAQ
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if f.Question == "" {
		s.writeJSON(w, http.StatusOK, mutationResponse{Message: "question is required"})
		return
	}

	s.store.mu.Lock()
	f.ID = s.store.nextFAQID
	s.store.nextFAQID++
	s.store.faqs = append(s.store.faqs, f)
	s.store.mu.Unlock()

	s.writeJSON(w, http.StatusOK, mutationResponse{Success: true, Message: "faq created", ID: strconv.Itoa(f.ID)})
}

func (s *Server) handleUpdateFAQ(w http.ResponseWriter, r *http.Request) {
	var f pricing.FAQ
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	id := queryID(r)
	if id == 0 {
		id = f.ID
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i, existing := range s.store.faqs {
		if existing.ID == id {
			f.ID = id
			s.store.faqs[i] = f
			s.writeJSON(w, http.StatusOK, mutationResponse{Success: true, Message: "faq updated"})
			return
		}
	}
	s.writeJSON(w, http.StatusOK, mutationResponse{Message: "faq not found"})
}

func (s *Server) handleDeleteFAQ(w http.ResponseWriter, r *http.Request) {
	id := queryID(r)
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i, f := range s.store.faqs {
		if f.ID == id {
			s.store.faqs = append(s.store.faqs[:i], s.store.faqs[i+1:]...)
			s.writeJSON(w, http.StatusOK, mutationResponse{Success: true, Message: "faq deleted"})
			return
		}
	}
	s.writeJSON(w, http.StatusOK, mutationResponse{Message: "faq not found"})
}

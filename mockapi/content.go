package mockapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wishcowork/sitekit/core/content"
)

// Content endpoints respond with bare arrays and objects, path-address
// single records, and accept slugs interchangeably with numeric ids.

func listWindow(r *http.Request, length int) (int, int) {
	q := r.URL.Query()
	offset, _ := strconv.Atoi(q.Get("offset"))
	offset = min(max(offset, 0), length)
	end := length
	if limit, _ := strconv.Atoi(q.Get("limit")); limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return offset, end
}

func (s *Server) handleListBlogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	includeUnpublished := q.Get("includeUnpublished") == "true"
	category := q.Get("category")
	featured := q.Get("featured") == "true"
	search := strings.ToLower(q.Get("search"))

	s.store.mu.RLock()
	out := make([]content.Blog, 0, len(s.store.blogs))
	for _, b := range s.store.blogs {
		if !b.IsPublished && !includeUnpublished {
			continue
		}
		if category != "" && !strings.EqualFold(b.Category, category) {
			continue
		}
		if featured && !b.IsFeatured {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(b.Title), search) &&
			!strings.Contains(strings.ToLower(b.Excerpt), search) &&
			!strings.Contains(strings.ToLower(b.Content), search) {
			continue
		}
		out = append(out, b)
	}
	s.store.mu.RUnlock()

	start, end := listWindow(r, len(out))
	s.writeJSON(w, http.StatusOK, out[start:end])
}

func blogIdentMatch(b content.Blog, ident string) bool {
	return strconv.Itoa(b.ID) == ident || strings.EqualFold(b.Slug, ident)
}

func (s *Server) handleGetBlog(w http.ResponseWriter, r *http.Request) {
	ident := chi.URLParam(r, "ident")
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	for _, b := range s.store.blogs {
		if blogIdentMatch(b, ident) {
			s.writeJSON(w, http.StatusOK, b)
			return
		}
	}
	s.writeError(w, http.StatusNotFound, "blog not found")
}

func (s *Server) handleCreateBlog(w http.ResponseWriter, r *http.Request) {
	var b content.Blog
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if b.Title == "" {
		s.writeJSON(w, http.StatusOK, mutationResponse{Message: "title is required"})
		return
	}

	s.store.mu.Lock()
	b.ID = s.store.nextBlogID
	s.store.nextBlogID++
	b.CreatedAt = time.Now().Format(time.RFC3339)
	s.store.blogs = append(s.store.blogs, b)
	s.store.mu.Unlock()

	s.writeJSON(w, http.StatusOK, mutationResponse{Success: true, Message: "blog created", ID: strconv.Itoa(b.ID)})
}

func (s *Server) handleUpdateBlog(w http.ResponseWriter, r *http.Request) {
	ident := chi.URLParam(r, "ident")
	var patch content.Blog
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i, b := range s.store.blogs {
		if blogIdentMatch(b, ident) {
			patch.ID = b.ID
			patch.UpdatedAt = time.Now().Format(time.RFC3339)
			s.store.blogs[i] = patch
			s.writeJSON(w, http.StatusOK, mutationResponse{Success: true, Message: "blog updated"})
			return
		}
	}
	s.writeJSON(w, http.StatusOK, mutationResponse{Message: "blog not found"})
}

func (s *Server) handleDeleteBlog(w http.ResponseWriter, r *http.Request) {
	ident := chi.URLParam(r, "ident")
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i, b := range s.store.blogs {
		if blogIdentMatch(b, ident) {
			s.store.blogs = append(s.store.blogs[:i], s.store.blogs[i+1:]...)
			s.writeJSON(w, http.StatusOK, mutationResponse{Success: true, Message: "blog deleted"})
			return
		}
	}
	s.writeJSON(w, http.StatusOK, mutationResponse{Message: "blog not found"})
}

func (s *Server) handleListNews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	includeUnpublished := q.Get("includeUnpublished") == "true"
	category := q.Get("category")
	featured := q.Get("featured") == "true"
	search := strings.ToLower(q.Get("search"))

	s.store.mu.RLock()
	out := make([]content.News, 0, len(s.store.news))
	for _, n := range s.store.news {
		if !n.IsPublished && !includeUnpublished {
			continue
		}
		if category != "" && !strings.EqualFold(n.Category, category) {
			continue
		}
		if featured && !n.IsFeatured {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(n.Title), search) &&
			!strings.Contains(strings.ToLower(n.Summary), search) &&
			!strings.Contains(strings.ToLower(n.Content), search) {
			continue
		}
		out = append(out, n)
	}
	s.store.mu.RUnlock()

	start, end := listWindow(r, len(out))
	s.writeJSON(w, http.StatusOK, out[start:end])
}

func newsIdentMatch(n content.News, ident string) bool {
	return strconv.Itoa(n.ID) == ident || strings.EqualFold(n.Slug, ident)
}

func (s *Server) handleGetNews(w http.ResponseWriter, r *http.Request) {
	ident := chi.URLParam(r, "ident")
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	for _, n := range s.store.news {
		if newsIdentMatch(n, ident) {
			s.writeJSON(w, http.StatusOK, n)
			return
		}
	}
	s.writeError(w, http.StatusNotFound, "news not found")
}

func (s *Server) handleCreateNews(w http.ResponseWriter, r *http.Request) {
	var n content.News
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if n.Title == "" {
		s.writeJSON(w, http.StatusOK, mutationResponse{Message: "title is required"})
		return
	}

	s.store.mu.Lock()
	n.ID = s.store.nextNewsID
	s.store.nextNewsID++
	n.CreatedAt = time.Now().Format(time.RFC3339)
	s.store.news = append(s.store.news, n)
	s.store.mu.Unlock()

	s.writeJSON(w, http.StatusOK, mutationResponse{Success: true, Message: "news created", ID: strconv.Itoa(n.ID)})
}

func (s *Server) handleUpdateNews(w http.ResponseWriter, r *http.Request) {
	ident := chi.URLParam(r, "ident")
	var patch content.News
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i, n := range s.store.news {
		if newsIdentMatch(n, ident) {
			patch.ID = n.ID
			patch.UpdatedAt = time.Now().Format(time.RFC3339)
			s.store.news[i] = patch
			s.writeJSON(w, http.StatusOK, mutationResponse{Success: true, Message: "news updated"})
			return
		}
	}
	s.writeJSON(w, http.StatusOK, mutationResponse{Message: "news not found"})
}

func (s *Server) handleDeleteNews(w http.ResponseWriter, r *http.Request) {
	ident := chi.URLParam(r, "ident")
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i, n := range s.store.news {
		if newsIdentMatch(n, ident) {
			s.store.news = append(s.store.news[:i], s.store.news[i+1:]...)
			s.writeJSON(w, http.StatusOK, mutationResponse{Success: true, Message: "news deleted"})
			return
		}
	}
	s.writeJSON(w, http.StatusOK, mutationResponse{Message: "news not found"})
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	includeInactive := q.Get("includeInactive") == "true"
	category := q.Get("category")
	upcoming := q.Get("upcoming") == "true"
	today := time.Now().Format("2006-01-02")

	s.store.mu.RLock()
	out := make([]content.Event, 0, len(s.store.events))
	for _, e := range s.store.events {
		if !e.IsActive && !includeInactive {
			continue
		}
		if category != "" && !strings.EqualFold(e.Category, category) {
			continue
		}
		if upcoming && e.EventDate < today {
			continue
		}
		out = append(out, e)
	}
	s.store.mu.RUnlock()

	start, end := listWindow(r, len(out))
	s.writeJSON(w, http.StatusOK, out[start:end])
}

func (s *Server) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	for _, e := range s.store.events {
		if e.ID == id {
			s.writeJSON(w, http.StatusOK, e)
			return
		}
	}
	s.writeError(w, http.StatusNotFound, "event not found")
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var e content.Event
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if e.Title == "" {
		s.writeJSON(w, http.StatusOK, mutationResponse{Message: "title is required"})
		return
	}

	s.store.mu.Lock()
	e.ID = s.store.nextEventID
	s.store.nextEventID++
	e.CreatedAt = time.Now().Format(time.RFC3339)
	s.store.events = append(s.store.events, e)
	s.store.mu.Unlock()

	s.writeJSON(w, http.StatusOK, mutationResponse{Success: true, Message: "event created", ID: strconv.Itoa(e.ID)})
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	var patch content.Event
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i, e := range s.store.events {
		if e.ID == id {
			patch.ID = id
			patch.UpdatedAt = time.Now().Format(time.RFC3339)
			s.store.events[i] = patch
			s.writeJSON(w, http.StatusOK, mutationResponse{Success: true, Message: "event updated"})
			return
		}
	}
	s.writeJSON(w, http.StatusOK, mutationResponse{Message: "event not found"})
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i, e := range s.store.events {
		if e.ID == id {
			s.store.events = append(s.store.events[:i], s.store.events[i+1:]...)
			s.writeJSON(w, http.StatusOK, mutationResponse{Success: true, Message: "event deleted"})
			return
		}
	}
	s.writeJSON(w, http.StatusOK, mutationResponse{Message: "event not found"})
}

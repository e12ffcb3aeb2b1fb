package mockapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wishcowork/sitekit/core/logger"
)

// Server is the development backend: the full wishcowork HTTP contract
// served from seeded in-memory stores. It backs live-mode tests and local
// frontend work without a real deployment.
type Server struct {
	router chi.Router
	store  *store
	log    *slog.Logger

	adminEmail    string
	adminPassword string
	tokenTTL      time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithCredentials overrides the accepted admin login.
func WithCredentials(email, password string) Option {
	return func(s *Server) {
		s.adminEmail = email
		s.adminPassword = password
	}
}

// WithTokenTTL overrides the lifetime of issued tokens.
func WithTokenTTL(ttl time.Duration) Option {
	return func(s *Server) {
		if ttl > 0 {
			s.tokenTTL = ttl
		}
	}
}

// New builds a server with freshly seeded data.
func New(opts ...Option) *Server {
	s := &Server{
		store:         newStore(),
		log:           slog.Default(),
		adminEmail:    "admin@wishcowork.com",
		adminPassword: "admin123",
		tokenTTL:      24 * time.Hour,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/auth", s.handleLogin)

	r.Get("/properties", s.handleListProperties)
	r.Post("/properties", s.handleCreateProperty)
	r.Put("/properties", s.handleUpdateProperty)
	r.Delete("/properties", s.handleDeleteProperty)

	r.Route("/blogs", func(r chi.Router) {
		r.Get("/", s.handleListBlogs)
		r.Post("/", s.handleCreateBlog)
		r.Get("/{ident}", s.handleGetBlog)
		r.Put("/{ident}", s.handleUpdateBlog)
		r.Delete("/{ident}", s.handleDeleteBlog)
	})

	r.Route("/news", func(r chi.Router) {
		r.Get("/", s.handleListNews)
		r.Post("/", s.handleCreateNews)
		r.Get("/{ident}", s.handleGetNews)
		r.Put("/{ident}", s.handleUpdateNews)
		r.Delete("/{ident}", s.handleDeleteNews)
	})

	r.Route("/events", func(r chi.Router) {
		r.Get("/", s.handleListEvents)
		r.Post("/", s.handleCreateEvent)
		r.Get("/{id}", s.handleGetEvent)
		r.Put("/{id}", s.handleUpdateEvent)
		r.Delete("/{id}", s.handleDeleteEvent)
	})

	r.Route("/pricing", func(r chi.Router) {
		r.Get("/plans", s.handleListPlans)
		r.Post("/plans", s.handleCreatePlan)
		r.Put("/plans", s.handleUpdatePlan)
		r.Delete("/plans", s.handleDeletePlan)
		r.Get("/services", s.handleListAddons)
		r.Post("/services", s.handleCreateAddon)
		r.Put("/services", s.handleUpdateAddon)
		r.Delete("/services", s.handleDeleteAddon)
		r.Get("/faqs", s.handleListFAQs)
		r.Post("/faqs", s.handleCreateFAQ)
		r.Put("/faqs", s.handleUpdateFAQ)
		r.Delete("/faqs", s.handleDeleteFAQ)
	})

	r.Post("/views", s.handleTrackView)
	r.Get("/views", s.handleViewStats)

	s.router = r
	return s
}

// Handler returns the HTTP handler for mounting or httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("response encode failed", logger.Component("mockapi"), logger.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

type mutationResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	ID         string `json:"id,omitempty"`
	PropertyID string `json:"propertyId,omitempty"`
}

package settings

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/wishcowork/sitekit/core/storage"
	"github.com/wishcowork/sitekit/pkg/broadcast"
)

// Settings is the runtime configuration a site operator can change from the
// admin console: which backend to talk to, and whether to serve data from the
// built-in seed instead of the network.
type Settings struct {
	APIURL     string `json:"apiUrl"`
	UseMockAPI bool   `json:"useMockAPI"`
}

// Service owns the current settings, persists them to client storage, and
// broadcasts changes to observers. Updates are replace-then-notify: observers
// never see a partially applied settings value.
type Service struct {
	mu       sync.RWMutex
	store    storage.Store
	key      string
	defaults Settings
	current  Settings
	bus      *broadcast.MemoryBroadcaster[Settings]
}

// NewService creates a settings service backed by store. Stored settings are
// hydrated on construction; a corrupt stored value falls back to defaults.
func NewService(store storage.Store, opts ...Option) *Service {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	s := &Service{
		store:    store,
		key:      cfg.storageKey,
		defaults: cfg.defaults,
		current:  cfg.defaults,
		bus:      broadcast.NewMemoryBroadcaster[Settings](cfg.bufSize),
	}

	if raw, ok := store.Get(s.key); ok {
		stored := s.defaults
		if err := json.Unmarshal([]byte(raw), &stored); err == nil {
			s.current = stored
		}
	}
	return s
}

// Current returns the active settings.
func (s *Service) Current() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// APIURL returns the configured backend base URL.
func (s *Service) APIURL() string {
	return s.Current().APIURL
}

// UseMockAPI reports whether data should be served from the in-memory seed.
func (s *Service) UseMockAPI() bool {
	return s.Current().UseMockAPI
}

// Update replaces the active settings, persists them, and notifies observers.
func (s *Service) Update(next Settings) {
	s.mu.Lock()
	s.current = next
	if raw, err := json.Marshal(next); err == nil {
		s.store.Set(s.key, string(raw))
	}
	s.mu.Unlock()

	_ = s.bus.Broadcast(context.Background(), broadcast.Message[Settings]{Data: next})
}

// SetAPIURL updates only the backend base URL.
func (s *Service) SetAPIURL(url string) {
	next := s.Current()
	next.APIURL = url
	s.Update(next)
}

// SetUseMockAPI toggles mock mode.
func (s *Service) SetUseMockAPI(useMock bool) {
	next := s.Current()
	next.UseMockAPI = useMock
	s.Update(next)
}

// Reset restores defaults and removes the persisted value.
func (s *Service) Reset() {
	s.mu.Lock()
	s.current = s.defaults
	s.store.Delete(s.key)
	defaults := s.defaults
	s.mu.Unlock()

	_ = s.bus.Broadcast(context.Background(), broadcast.Message[Settings]{Data: defaults})
}

// Subscribe returns a subscription delivering every settings change until ctx
// is canceled.
func (s *Service) Subscribe(ctx context.Context) broadcast.Subscriber[Settings] {
	return s.bus.Subscribe(ctx)
}

// Close shuts down the change broadcaster.
func (s *Service) Close() error {
	return s.bus.Close()
}

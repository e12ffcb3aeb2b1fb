package auth

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/wishcowork/sitekit/core/client"
	"github.com/wishcowork/sitekit/core/logger"
	"github.com/wishcowork/sitekit/core/settings"
	"github.com/wishcowork/sitekit/core/storage"
	"github.com/wishcowork/sitekit/pkg/async"
	"github.com/wishcowork/sitekit/pkg/broadcast"
	"github.com/wishcowork/sitekit/pkg/token"
)

// Manager is the single source of truth for "who is logged in". State lives
// in client storage (token + serialized user) and is mirrored in memory;
// every change is broadcast to observers as a whole-value replacement.
//
// Only two transitions exist: a successful login replaces the session, and
// logout or detected expiry clears it.
type Manager struct {
	mu  sync.RWMutex
	cfg *managerConfig

	store    storage.Store
	settings *settings.Service
	api      *client.Client
	bus      *broadcast.MemoryBroadcaster[*User]
	log      *slog.Logger

	user *User
}

// NewManager creates a session manager backed by store. Any session already
// present in storage is hydrated; a corrupt stored user clears both keys so
// the invariant (user present iff credential present) holds from the start.
func NewManager(store storage.Store, svc *settings.Service, opts ...Option) *Manager {
	cfg := defaultManagerConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.log == nil {
		cfg.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m := &Manager{
		cfg:      cfg,
		store:    store,
		settings: svc,
		bus:      broadcast.NewMemoryBroadcaster[*User](8),
		log:      cfg.log,
	}

	apiOpts := []client.Option{client.WithTokenSource(m.Token), client.WithLogger(cfg.log)}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, client.WithHTTPClient(cfg.httpClient))
	}
	m.api = client.New(svc.APIURL, apiOpts...)

	m.hydrate()
	return m
}

// hydrate restores the in-memory user from storage at startup.
func (m *Manager) hydrate() {
	tok, hasToken := m.store.Get(m.cfg.tokenKey)
	rawUser, hasUser := m.store.Get(m.cfg.userKey)
	if !hasToken || !hasUser || tok == "" {
		return
	}

	var u User
	if err := json.Unmarshal([]byte(rawUser), &u); err != nil {
		m.log.Warn("stored user is corrupt, clearing session", logger.Component("auth"), logger.Error(err))
		m.clearAuth()
		return
	}

	m.mu.Lock()
	m.user = &u
	m.mu.Unlock()
}

// Login authenticates with the live backend or, in mock mode, against the
// configured credential pair. Both strategies resolve asynchronously through
// the same future type, so callers cannot distinguish them by timing
// behavior. On success the credential and user are persisted and the new
// session is broadcast.
func (m *Manager) Login(ctx context.Context, email, password string) *async.Future[Session] {
	if m.settings.UseMockAPI() {
		return async.Run(ctx, func(ctx context.Context) (Session, error) {
			return m.mockLogin(ctx, email, password)
		})
	}
	return async.Run(ctx, func(ctx context.Context) (Session, error) {
		return m.liveLogin(ctx, email, password)
	})
}

func (m *Manager) liveLogin(ctx context.Context, email, password string) (Session, error) {
	raw, err := m.api.Post(ctx, "/auth", nil, map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			// Preserve the server-provided message alongside the sentinel.
			return Session{}, errors.Join(ErrInvalidCredentials, apiErr)
		}
		return Session{}, errors.Join(ErrInvalidCredentials, err)
	}

	var resp loginResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return Session{}, errors.Join(ErrInvalidCredentials, ErrMalformedResponse, err)
	}
	if !resp.Success || resp.Token == "" || resp.User == nil {
		return Session{}, errors.Join(ErrInvalidCredentials, ErrMalformedResponse)
	}

	sess := Session{User: *resp.User, Token: resp.Token}
	m.establish(sess)
	return sess, nil
}

func (m *Manager) mockLogin(ctx context.Context, email, password string) (Session, error) {
	// Keep the eventual-result contract of the live path.
	if m.cfg.mockDelay > 0 {
		select {
		case <-time.After(m.cfg.mockDelay):
		case <-ctx.Done():
			return Session{}, ctx.Err()
		}
	}

	if email != m.cfg.mockEmail || password != m.cfg.mockPassword {
		return Session{}, ErrInvalidCredentials
	}

	user := User{
		ID:     "1",
		Email:  email,
		Name:   "Admin User",
		Role:   RoleAdmin,
		Avatar: "https://ui-avatars.com/api/?name=Admin+User&background=6366f1&color=fff",
	}
	sess := Session{
		User:  user,
		Token: token.Mint(user.ID, user.Email, string(user.Role), m.cfg.tokenTTL),
	}
	m.establish(sess)
	return sess, nil
}

// establish persists the session and notifies observers. Replace-then-notify:
// observers only ever see the fully applied session.
func (m *Manager) establish(sess Session) {
	rawUser, err := json.Marshal(sess.User)
	if err != nil {
		m.log.Error("failed to serialize user", logger.Component("auth"), logger.Error(err))
		return
	}

	m.mu.Lock()
	m.store.Set(m.cfg.tokenKey, sess.Token)
	m.store.Set(m.cfg.userKey, string(rawUser))
	u := sess.User
	m.user = &u
	m.mu.Unlock()

	m.log.Info("session established",
		logger.Component("auth"), logger.UserID(sess.User.ID), logger.Mode(m.settings.UseMockAPI()))
	_ = m.bus.Broadcast(context.Background(), broadcast.Message[*User]{Data: &u})
}

// Logout clears the session. Client-local only; no network call.
func (m *Manager) Logout() {
	m.clearAuth()
	m.log.Info("session cleared", logger.Component("auth"))
}

// IsAuthenticated reports whether a user is logged in. It checks storage for
// the credential, not just memory, since memory may not be hydrated yet when
// called early in startup.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	user := m.user
	m.mu.RUnlock()
	if user == nil {
		return false
	}
	tok, ok := m.store.Get(m.cfg.tokenKey)
	return ok && tok != ""
}

// IsAdmin reports whether the authenticated user has the admin role. Always
// false for unauthenticated sessions.
func (m *Manager) IsAdmin() bool {
	if !m.IsAuthenticated() {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil && m.user.IsAdmin()
}

// CurrentUser returns the last known in-memory user, without re-reading
// storage. Nil when logged out.
func (m *Manager) CurrentUser() *User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Token returns the stored bearer credential, or empty when absent.
func (m *Manager) Token() string {
	tok, _ := m.store.Get(m.cfg.tokenKey)
	return tok
}

// ValidateToken decodes the stored credential's payload and checks its expiry
// claim against the wall clock. It fails closed: a missing token or any
// decode error clears the session and returns false. The expiry claim is in
// seconds since epoch; Claims.Expired performs the unit conversion.
func (m *Manager) ValidateToken(ctx context.Context) bool {
	tok := m.Token()
	if tok == "" {
		m.clearAuth()
		return false
	}

	claims, err := token.Decode(tok)
	if err != nil {
		m.log.Warn("token validation failed", logger.Component("auth"), logger.Error(err))
		m.clearAuth()
		return false
	}

	if claims.Expired(time.Now()) {
		m.log.Warn("token expired", logger.Component("auth"), logger.UserID(claims.Subject))
		m.clearAuth()
		return false
	}
	return true
}

// Subscribe returns a subscription delivering the user on login and nil on
// logout, until ctx is canceled.
func (m *Manager) Subscribe(ctx context.Context) broadcast.Subscriber[*User] {
	return m.bus.Subscribe(ctx)
}

// Close shuts down the session broadcaster.
func (m *Manager) Close() error {
	return m.bus.Close()
}

// API returns the backend client carrying this manager's bearer credential,
// for data services that issue authenticated write calls.
func (m *Manager) API() *client.Client {
	return m.api
}

func (m *Manager) clearAuth() {
	m.mu.Lock()
	m.store.Delete(m.cfg.tokenKey)
	m.store.Delete(m.cfg.userKey)
	m.user = nil
	m.mu.Unlock()

	_ = m.bus.Broadcast(context.Background(), broadcast.Message[*User]{Data: nil})
}

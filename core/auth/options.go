package auth

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/wishcowork/sitekit/core/config"
)

// EnvConfig carries environment defaults for the session manager.
type EnvConfig struct {
	TokenKey     string        `env:"SITE_AUTH_TOKEN_KEY" envDefault:"wishcowork_auth_token"`
	UserKey      string        `env:"SITE_AUTH_USER_KEY" envDefault:"wishcowork_user"`
	MockEmail    string        `env:"SITE_MOCK_ADMIN_EMAIL" envDefault:"admin@wishcowork.com"`
	MockPassword string        `env:"SITE_MOCK_ADMIN_PASSWORD" envDefault:"admin123"`
	MockDelay    time.Duration `env:"SITE_MOCK_AUTH_DELAY" envDefault:"500ms"`
	TokenTTL     time.Duration `env:"SITE_AUTH_TOKEN_TTL" envDefault:"24h"`
}

type managerConfig struct {
	tokenKey     string
	userKey      string
	mockEmail    string
	mockPassword string
	mockDelay    time.Duration
	tokenTTL     time.Duration
	log          *slog.Logger
	httpClient   *http.Client
}

func defaultManagerConfig() *managerConfig {
	var envCfg EnvConfig
	config.MustLoad(&envCfg)

	return &managerConfig{
		tokenKey:     envCfg.TokenKey,
		userKey:      envCfg.UserKey,
		mockEmail:    envCfg.MockEmail,
		mockPassword: envCfg.MockPassword,
		mockDelay:    envCfg.MockDelay,
		tokenTTL:     envCfg.TokenTTL,
	}
}

// Option is a functional option for configuring the session manager.
type Option func(*managerConfig)

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *managerConfig) {
		c.log = log
	}
}

// WithMockCredentials overrides the mock strategy's accepted credential pair.
func WithMockCredentials(email, password string) Option {
	return func(c *managerConfig) {
		c.mockEmail = email
		c.mockPassword = password
	}
}

// WithMockDelay sets the simulated network delay for mock logins.
// Zero disables the delay (useful in tests).
func WithMockDelay(d time.Duration) Option {
	return func(c *managerConfig) {
		c.mockDelay = d
	}
}

// WithTokenTTL sets the lifetime of mock-minted tokens.
func WithTokenTTL(ttl time.Duration) Option {
	return func(c *managerConfig) {
		if ttl > 0 {
			c.tokenTTL = ttl
		}
	}
}

// WithStorageKeys overrides the storage keys for token and user.
func WithStorageKeys(tokenKey, userKey string) Option {
	return func(c *managerConfig) {
		if tokenKey != "" {
			c.tokenKey = tokenKey
		}
		if userKey != "" {
			c.userKey = userKey
		}
	}
}

// WithHTTPClient replaces the HTTP client used for live logins.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *managerConfig) {
		c.httpClient = hc
	}
}

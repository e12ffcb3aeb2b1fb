package settings

import "github.com/wishcowork/sitekit/core/config"

// EnvConfig carries environment-sourced defaults for the settings service.
type EnvConfig struct {
	APIURL     string `env:"SITE_API_URL" envDefault:"http://wishapi"`
	UseMockAPI bool   `env:"SITE_USE_MOCK_API" envDefault:"false"`
	StorageKey string `env:"SITE_SETTINGS_KEY" envDefault:"wishcowork_settings"`
}

type serviceConfig struct {
	storageKey string
	defaults   Settings
	bufSize    int
}

func defaultConfig() *serviceConfig {
	var envCfg EnvConfig
	config.MustLoad(&envCfg)

	return &serviceConfig{
		storageKey: envCfg.StorageKey,
		defaults: Settings{
			APIURL:     envCfg.APIURL,
			UseMockAPI: envCfg.UseMockAPI,
		},
		bufSize: 8,
	}
}

// Option is a functional option for configuring the settings service.
type Option func(*serviceConfig)

// WithDefaults overrides the environment-derived default settings.
func WithDefaults(defaults Settings) Option {
	return func(c *serviceConfig) {
		c.defaults = defaults
	}
}

// WithStorageKey overrides the storage key the settings are persisted under.
func WithStorageKey(key string) Option {
	return func(c *serviceConfig) {
		if key != "" {
			c.storageKey = key
		}
	}
}

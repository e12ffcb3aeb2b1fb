// Package config provides type-safe environment variable loading with
// per-type caching.
//
//	type APIConfig struct {
//		BaseURL string `env:"SITE_API_URL" envDefault:"http://wishapi"`
//		Timeout time.Duration `env:"SITE_API_TIMEOUT" envDefault:"10s"`
//	}
//
//	var cfg APIConfig
//	config.MustLoad(&cfg)
//
// A .env file is loaded automatically on first use. Each configuration type
// is parsed once per process lifetime; later loads of the same type return
// the cached value.
package config

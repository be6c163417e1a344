// Package config provides a type-safe, generic way to load configuration
// from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` to
// deliver a small API that:
//
//   - Loads values from the default `.env` file in the current working
//     directory (once per process), or from explicitly named files.
//   - Parses the environment into any Go struct using `env` field tags.
//   - Exposes a helper that panics on failure (`MustLoad`) for configuration
//     the application cannot start without.
//
// # Usage
//
// Create a struct describing your configuration and annotate its fields with
// `env` tags:
//
//	type CatalogConfig struct {
//		Dir     string   `env:"MSGKIT_DIR" envDefault:"locales"`
//		Locales []string `env:"MSGKIT_LOCALES" envDefault:"en"`
//		Domain  string   `env:"MSGKIT_DOMAIN" envDefault:"messages"`
//	}
//
//	var cfg CatalogConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatalf("failed to load config: %v", err)
//	}
//
// Unlike application frameworks that cache parsed configuration globally,
// this package parses on every call; callers that need a single shared
// config value should hold on to the parsed struct themselves.
package config

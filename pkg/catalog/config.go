package catalog

import (
	"context"

	"github.com/dmitrymomot/msgkit/pkg/config"
)

// Config describes where compiled catalogs live and which locales to
// prefer, populated from environment variables via github.com/caarlos0/env.
type Config struct {
	Dir     string   `env:"MSGKIT_DIR" envDefault:"locales"`    // Dir is the base directory of the catalog tree.
	Locales []string `env:"MSGKIT_LOCALES" envDefault:"en"`     // Locales is the ordered locale preference list.
	Domain  string   `env:"MSGKIT_DOMAIN" envDefault:"messages"` // Domain selects the catalog file within each locale.
}

// LoadFromEnv reads Config from the environment and loads the matching
// catalog. Like Load, a missing catalog resolves to NullTranslations.
func LoadFromEnv(ctx context.Context, opts ...LoadOption) (Translator, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return Load(ctx, cfg.Dir, cfg.Locales, cfg.Domain, opts...)
}

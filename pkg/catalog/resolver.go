package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
)

// Resolver maps (base directory, locale, domain, file extension) to the
// path of a compiled catalog file.
type Resolver func(base, locale, domain, ext string) string

// DefaultResolver resolves paths in the conventional gettext layout:
// <base>/<locale>/LC_MESSAGES/<domain>.<ext>.
func DefaultResolver(base, locale, domain, ext string) string {
	return filepath.Join(base, locale, "LC_MESSAGES", domain+"."+ext)
}

// LoadOption configures a Load call.
type LoadOption func(*loadConfig)

type loadConfig struct {
	resolver   Resolver
	decoder    Decoder
	extensions []string
	setOptions []Option
}

// WithResolver replaces the catalog file resolver.
func WithResolver(r Resolver) LoadOption {
	return func(c *loadConfig) {
		if r != nil {
			c.resolver = r
		}
	}
}

// WithExtensions sets the file extensions probed per locale, in preference
// order.
func WithExtensions(exts ...string) LoadOption {
	return func(c *loadConfig) {
		if len(exts) > 0 {
			c.extensions = exts
		}
	}
}

// WithDecoder forces a single decoder instead of picking one by file
// extension.
func WithDecoder(d Decoder) LoadOption {
	return func(c *loadConfig) {
		c.decoder = d
	}
}

// WithTranslationOptions forwards options (logger, missing-key logging) to
// the Translations set built from the loaded catalog.
func WithTranslationOptions(opts ...Option) LoadOption {
	return func(c *loadConfig) {
		c.setOptions = append(c.setOptions, opts...)
	}
}

// Load searches base for a compiled catalog matching the first satisfiable
// locale in the ordered preference list and the given domain. Each locale
// is expanded through its parent chain ("fr-CA" also tries "fr") before the
// next preference is consulted.
//
// A catalog that cannot be found is not an error: Load resolves to
// NullTranslations so lookups keep working against the source strings. A
// catalog that exists but cannot be read or decoded is surfaced to the
// caller unchanged.
func Load(ctx context.Context, base string, locales []string, domain string, opts ...LoadOption) (Translator, error) {
	if domain == "" {
		domain = DefaultDomain
	}

	cfg := loadConfig{
		resolver:   DefaultResolver,
		extensions: []string{"json", "yaml", "yml"},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	for _, locale := range expandLocales(locales) {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		for _, ext := range cfg.extensions {
			path := cfg.resolver(base, locale, domain, ext)

			data, err := os.ReadFile(path)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}
				return nil, errors.Join(ErrFailedToReadCatalog, err)
			}

			decoder := cfg.decoder
			if decoder == nil {
				decoder = NewDecoderForFile(path)
			}
			if decoder == nil {
				return nil, errors.Join(ErrUnsupportedFormat, fmt.Errorf("no decoder for %q", path))
			}

			c, err := decoder.Decode(ctx, data)
			if err != nil {
				return nil, err
			}

			setOpts := append([]Option{
				WithCatalog(c),
				WithDomain(domain),
				WithFiles(path),
			}, cfg.setOptions...)
			return NewTranslations(setOpts...), nil
		}
	}

	return NewNullTranslations(), nil
}

// expandLocales widens each locale preference with its canonical form and
// parent chain, preserving preference order and deduplicating. Both the
// BCP 47 spelling ("pt-BR") and the filesystem-friendly underscore spelling
// ("pt_BR") are produced, since catalog trees commonly use either.
func expandLocales(locales []string) []string {
	out := make([]string, 0, len(locales)*2)
	seen := make(map[string]struct{}, len(locales)*2)

	add := func(locale string) {
		if locale == "" {
			return
		}
		if _, ok := seen[locale]; ok {
			return
		}
		seen[locale] = struct{}{}
		out = append(out, locale)
	}

	for _, raw := range locales {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		add(raw)
		add(strings.ReplaceAll(raw, "-", "_"))

		tag, err := language.Parse(raw)
		if err != nil {
			continue
		}
		for t := tag; !t.IsRoot(); t = t.Parent() {
			add(t.String())
			add(strings.ReplaceAll(t.String(), "-", "_"))
		}
	}

	return out
}

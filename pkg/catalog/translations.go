package catalog

import (
	"io"
	"log/slog"
	"slices"
)

// DefaultDomain is the domain name used when a catalog set is created
// without an explicit domain.
const DefaultDomain = "messages"

// Translations is a lookup engine over one primary catalog plus any number
// of secondary catalogs registered by domain. Every lookup is a total
// function: a missing key degrades through the documented fallback chain
// (full key, then context-free or plural-only key, then the fallback sets,
// then the untranslated input) and is never an error.
//
// Lookups are read-only and safe for concurrent use once the set is built.
// Merge, Add and AddFallback mutate the set; callers must serialize them
// against concurrent lookups, no internal locking is performed.
type Translations struct {
	domain     string
	catalog    *Catalog
	domains    map[string]*Catalog
	fallbacks  []Translator
	files      []string
	logger     *slog.Logger
	logMissing bool
}

// Option configures a Translations set during construction.
type Option func(*Translations)

// WithCatalog installs the primary catalog. The set's domain follows the
// catalog's declared domain unless WithDomain overrides it.
func WithCatalog(c *Catalog) Option {
	return func(t *Translations) {
		if c == nil {
			return
		}
		t.catalog = c
		if c.Domain() != "" {
			t.domain = c.Domain()
		}
	}
}

// WithDomain sets the default domain name. The empty string is a valid
// domain and participates in merges like any other.
func WithDomain(domain string) Option {
	return func(t *Translations) {
		t.domain = domain
	}
}

// WithFiles records the source identifiers (usually file names) the set was
// built from, for diagnostics and merge bookkeeping.
func WithFiles(files ...string) Option {
	return func(t *Translations) {
		t.files = append(t.files, files...)
	}
}

// WithLogger sets the logger used for missing-key reporting.
// Nil loggers are ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translations) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingLog enables logging of lookups that fell back to the
// untranslated input. Useful for spotting translation gaps in development.
func WithMissingLog() Option {
	return func(t *Translations) {
		t.logMissing = true
	}
}

// NewTranslations creates a Translations set. Without options the set has
// an empty catalog under DefaultDomain and behaves like NullTranslations.
func NewTranslations(opts ...Option) *Translations {
	t := &Translations{
		domain: DefaultDomain,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // noop logger by default
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.catalog == nil {
		t.catalog = NewCatalog(t.domain, "")
	}
	t.domains = map[string]*Catalog{t.domain: t.catalog}

	return t
}

// Domain returns the set's default domain name.
func (t *Translations) Domain() string { return t.domain }

// Catalog returns the primary catalog backing the default domain.
func (t *Translations) Catalog() *Catalog { return t.catalog }

// Files returns the source identifiers accumulated through construction and
// merges, in merge order.
func (t *Translations) Files() []string {
	return slices.Clone(t.files)
}

// Domains returns the sorted list of registered domain names.
func (t *Translations) Domains() []string {
	names := make([]string, 0, len(t.domains))
	for name := range t.domains {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Gettext returns the localized singular for msg in the default domain, or
// msg unchanged when no catalog in the set or its fallback chain has it.
func (t *Translations) Gettext(msg string) string {
	if s, ok := t.lookupSingular(msg); ok {
		return s
	}
	t.missing("gettext", t.domain, msg)
	return msg
}

// PGettext returns the localized singular for msg under a disambiguating
// context. A miss degrades to the context-free Gettext lookup rather than
// straight to the raw input.
func (t *Translations) PGettext(context, msg string) string {
	if s, ok := t.lookupSingular(context + contextSeparator + msg); ok {
		return s
	}
	return t.Gettext(msg)
}

// NGettext returns the plural form for the count n. When the set has no
// plural entry for singular, the universal default applies: n == 1 selects
// singular, anything else selects plural.
func (t *Translations) NGettext(singular, plural string, n int) string {
	if s, ok := t.lookupPlural(singular, n); ok {
		return s
	}
	t.missing("ngettext", t.domain, singular)
	return defaultPlural(singular, plural, n)
}

// NPGettext combines context and plural disambiguation. A miss on the full
// key degrades to NGettext with the context dropped.
func (t *Translations) NPGettext(context, singular, plural string, n int) string {
	if s, ok := t.lookupPlural(context+contextSeparator+singular, n); ok {
		return s
	}
	return t.NGettext(singular, plural, n)
}

// DGettext is Gettext against the catalog registered under domain. An
// unregistered domain behaves like NullTranslations for this call only.
func (t *Translations) DGettext(domain, msg string) string {
	c, ok := t.domains[domain]
	if !ok {
		t.missing("dgettext", domain, msg)
		return msg
	}
	if s, ok := c.lookup(msg); ok {
		return s
	}
	t.missing("dgettext", domain, msg)
	return msg
}

// DPGettext is PGettext against the catalog registered under domain.
func (t *Translations) DPGettext(domain, context, msg string) string {
	if c, ok := t.domains[domain]; ok {
		if s, ok := c.lookup(context + contextSeparator + msg); ok {
			return s
		}
	}
	return t.DGettext(domain, msg)
}

// DNGettext is NGettext against the catalog registered under domain.
func (t *Translations) DNGettext(domain, singular, plural string, n int) string {
	if c, ok := t.domains[domain]; ok {
		if s, ok := c.lookupPlural(singular, n); ok {
			return s
		}
	}
	t.missing("dngettext", domain, singular)
	return defaultPlural(singular, plural, n)
}

// DNPGettext is NPGettext against the catalog registered under domain.
func (t *Translations) DNPGettext(domain, context, singular, plural string, n int) string {
	if c, ok := t.domains[domain]; ok {
		if s, ok := c.lookupPlural(context+contextSeparator+singular, n); ok {
			return s
		}
	}
	return t.DNGettext(domain, singular, plural, n)
}

// GettextBytes is the byte-sequence twin of Gettext.
func (t *Translations) GettextBytes(msg string) []byte {
	return []byte(t.Gettext(msg))
}

// PGettextBytes is the byte-sequence twin of PGettext.
func (t *Translations) PGettextBytes(context, msg string) []byte {
	return []byte(t.PGettext(context, msg))
}

// NGettextBytes is the byte-sequence twin of NGettext.
func (t *Translations) NGettextBytes(singular, plural string, n int) []byte {
	return []byte(t.NGettext(singular, plural, n))
}

// NPGettextBytes is the byte-sequence twin of NPGettext.
func (t *Translations) NPGettextBytes(context, singular, plural string, n int) []byte {
	return []byte(t.NPGettext(context, singular, plural, n))
}

// DGettextBytes is the byte-sequence twin of DGettext.
func (t *Translations) DGettextBytes(domain, msg string) []byte {
	return []byte(t.DGettext(domain, msg))
}

// DPGettextBytes is the byte-sequence twin of DPGettext.
func (t *Translations) DPGettextBytes(domain, context, msg string) []byte {
	return []byte(t.DPGettext(domain, context, msg))
}

// DNGettextBytes is the byte-sequence twin of DNGettext.
func (t *Translations) DNGettextBytes(domain, singular, plural string, n int) []byte {
	return []byte(t.DNGettext(domain, singular, plural, n))
}

// DNPGettextBytes is the byte-sequence twin of DNPGettext.
func (t *Translations) DNPGettextBytes(domain, context, singular, plural string, n int) []byte {
	return []byte(t.DNPGettext(domain, context, singular, plural, n))
}

// Merge grafts the catalogs of another set into this one, domain by domain.
// A domain already present is overlaid entry-by-entry with incoming keys
// winning, or skipped entirely when overwrite is false. Domains absent from
// the receiver are copied in. The other set's source identifiers are
// appended in merge order.
func (t *Translations) Merge(other *Translations, overwrite bool) {
	if other == nil {
		return
	}

	for domain, incoming := range other.domains {
		existing, ok := t.domains[domain]
		if ok {
			if !overwrite {
				continue
			}
			existing.overlay(incoming)
			continue
		}
		t.domains[domain] = incoming.clone()
	}

	t.files = append(t.files, other.files...)
}

// Add registers the other set's primary catalog under its domain, making it
// reachable through the domain-qualified lookups, and optionally merges all
// of its catalogs into the receiver. It returns the receiver for chaining.
//
// When the other set shares the receiver's default domain, registration is
// skipped and only the merge applies; the primary catalog stays in place.
func (t *Translations) Add(other *Translations, merge bool) *Translations {
	if other == nil {
		return t
	}

	if other.domain != t.domain {
		t.domains[other.domain] = other.catalog
	}
	if merge {
		t.Merge(other, true)
	}

	return t
}

// AddFallback appends a catalog set consulted when a default-domain lookup
// misses every catalog in this set.
func (t *Translations) AddFallback(fallback Translator) {
	if fallback == nil {
		return
	}
	t.fallbacks = append(t.fallbacks, fallback)
}

// lookupSingular probes the primary catalog, then the fallback chain.
func (t *Translations) lookupSingular(key string) (string, bool) {
	if s, ok := t.catalog.lookup(key); ok {
		return s, true
	}
	for _, f := range t.fallbacks {
		ft, ok := f.(*Translations)
		if !ok {
			continue // NullTranslations never satisfies a key
		}
		if s, ok := ft.lookupSingular(key); ok {
			return s, true
		}
	}
	return "", false
}

// lookupPlural probes the primary catalog's plural entries, then the
// fallback chain.
func (t *Translations) lookupPlural(key string, n int) (string, bool) {
	if s, ok := t.catalog.lookupPlural(key, n); ok {
		return s, true
	}
	for _, f := range t.fallbacks {
		ft, ok := f.(*Translations)
		if !ok {
			continue
		}
		if s, ok := ft.lookupPlural(key, n); ok {
			return s, true
		}
	}
	return "", false
}

func (t *Translations) missing(op, domain, id string) {
	if t.logMissing {
		t.logger.Warn("translation not found", "op", op, "domain", domain, "id", id)
	}
}

// defaultPlural is the universal plural policy applied when no catalog
// entry exists: a pure is-one check, no locale rule involved. It must match
// NullTranslations observably.
func defaultPlural(singular, plural string, n int) string {
	if n == 1 {
		return singular
	}
	return plural
}

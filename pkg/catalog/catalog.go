package catalog

import (
	"maps"

	"github.com/dmitrymomot/msgkit/pkg/plural"
)

// contextSeparator joins a disambiguating context to a message id, following
// the gettext msgctxt convention. An entry stored with an empty context
// ("\x04msg") occupies a different key than one stored without a context
// ("msg").
const contextSeparator = "\x04"

// Catalog is the in-memory message mapping for a single domain and locale.
// Singular entries and plural entries live in separate key spaces: a message
// registered with plural forms is not visible to singular lookups, matching
// the layout of compiled gettext catalogs.
//
// A Catalog is built once by a Decoder or through the Set* methods and is
// treated as read-only by lookups afterwards.
type Catalog struct {
	domain   string
	locale   string
	nplurals int
	selector plural.Selector

	singular map[string]string
	plurals  map[string][]string
}

// NewCatalog creates an empty catalog for the given domain and locale.
// The plural selector is derived from the locale; use SetPluralRule to
// override it with the rule the catalog data declares.
func NewCatalog(domain, locale string) *Catalog {
	selector, nplurals := plural.ForLanguage(locale)
	return &Catalog{
		domain:   domain,
		locale:   locale,
		nplurals: nplurals,
		selector: selector,
		singular: make(map[string]string),
		plurals:  make(map[string][]string),
	}
}

// Domain returns the domain name the catalog was compiled for.
func (c *Catalog) Domain() string { return c.domain }

// Locale returns the locale identifier the catalog was compiled for.
func (c *Catalog) Locale() string { return c.locale }

// PluralForms returns the number of plural forms the catalog declares.
func (c *Catalog) PluralForms() int { return c.nplurals }

// SetPluralRule installs the plural selector declared by the catalog data.
// Nil selectors and non-positive form counts are ignored.
func (c *Catalog) SetPluralRule(selector plural.Selector, nplurals int) {
	if selector != nil {
		c.selector = selector
	}
	if nplurals > 0 {
		c.nplurals = nplurals
	}
}

// Set stores a singular translation for a message id.
func (c *Catalog) Set(id, text string) {
	c.singular[id] = text
}

// SetWithContext stores a singular translation disambiguated by a context
// marker. The empty context is a valid, distinct context.
func (c *Catalog) SetWithContext(context, id, text string) {
	c.singular[context+contextSeparator+id] = text
}

// SetPlural stores the ordered plural forms for a message id. Entries
// without at least one form are ignored.
func (c *Catalog) SetPlural(id string, forms []string) {
	if len(forms) == 0 {
		return
	}
	c.plurals[id] = forms
}

// SetPluralWithContext stores plural forms disambiguated by a context marker.
func (c *Catalog) SetPluralWithContext(context, id string, forms []string) {
	if len(forms) == 0 {
		return
	}
	c.plurals[context+contextSeparator+id] = forms
}

// Len returns the total number of entries in the catalog.
func (c *Catalog) Len() int {
	return len(c.singular) + len(c.plurals)
}

// lookup returns the singular translation stored for a key.
func (c *Catalog) lookup(key string) (string, bool) {
	s, ok := c.singular[key]
	return s, ok
}

// lookupPlural selects the plural form for a count using the catalog's
// selector. Indexes past the stored forms clamp to the last form so that a
// catalog with fewer forms than the rule selects between still resolves.
func (c *Catalog) lookupPlural(key string, n int) (string, bool) {
	forms, ok := c.plurals[key]
	if !ok {
		return "", false
	}
	idx := c.selector(n)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(forms) {
		idx = len(forms) - 1
	}
	return forms[idx], true
}

// overlay unions the entries of another catalog into this one, incoming
// keys taking precedence on collision. Metadata (domain, locale, plural
// rule) of the receiver is preserved.
func (c *Catalog) overlay(other *Catalog) {
	maps.Copy(c.singular, other.singular)
	for key, forms := range other.plurals {
		c.plurals[key] = append([]string(nil), forms...)
	}
}

// clone returns an independent copy of the catalog.
func (c *Catalog) clone() *Catalog {
	dup := &Catalog{
		domain:   c.domain,
		locale:   c.locale,
		nplurals: c.nplurals,
		selector: c.selector,
		singular: make(map[string]string, len(c.singular)),
		plurals:  make(map[string][]string, len(c.plurals)),
	}
	dup.overlay(c)
	return dup
}

package catalog

// Translator is the lookup contract shared by Translations and
// NullTranslations. Code written against it works unmodified whether a
// catalog was found or not; the compile-time assertions below stand in for
// the signature-compatibility checks the contract demands.
//
// Every method is total: a miss resolves through the documented fallback
// chain, never an error. String methods and their byte-sequence twins
// produce value-equivalent results for the same inputs.
type Translator interface {
	// Gettext returns the localized singular for msg in the default
	// domain, or msg unchanged on a miss.
	Gettext(msg string) string
	// PGettext is Gettext under a disambiguating context; a miss degrades
	// to the context-free lookup.
	PGettext(context, msg string) string
	// NGettext returns the plural form selected for n, or the universal
	// default (n == 1 picks singular, anything else plural) on a miss.
	NGettext(singular, plural string, n int) string
	// NPGettext is NGettext under a disambiguating context; a miss on the
	// full key degrades to NGettext.
	NPGettext(context, singular, plural string, n int) string

	// DGettext, DPGettext, DNGettext and DNPGettext are the same four
	// lookups against the catalog registered under domain. An unknown
	// domain behaves like NullTranslations for that call only.
	DGettext(domain, msg string) string
	DPGettext(domain, context, msg string) string
	DNGettext(domain, singular, plural string, n int) string
	DNPGettext(domain, context, singular, plural string, n int) string

	// Byte-sequence twins, value-equivalent to their string counterparts.
	GettextBytes(msg string) []byte
	PGettextBytes(context, msg string) []byte
	NGettextBytes(singular, plural string, n int) []byte
	NPGettextBytes(context, singular, plural string, n int) []byte
	DGettextBytes(domain, msg string) []byte
	DPGettextBytes(domain, context, msg string) []byte
	DNGettextBytes(domain, singular, plural string, n int) []byte
	DNPGettextBytes(domain, context, singular, plural string, n int) []byte
}

var (
	_ Translator = (*Translations)(nil)
	_ Translator = (*NullTranslations)(nil)
)

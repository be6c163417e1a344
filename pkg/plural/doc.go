// Package plural maps a count to a zero-based plural-form index using the
// rule family declared by a compiled message catalog.
//
// A Selector is a pure, deterministic function from a count to the index of
// the plural form a catalog stores for that count. Catalogs declare their
// rule by name ("germanic", "slavic", ...) together with the number of
// forms they carry; ByName resolves the declaration and ForLanguage picks a
// sensible rule family for a bare language code when a catalog declares
// nothing.
//
// The package intentionally offers a fixed set of named rule families
// rather than a parser for gettext plural-rule expressions; catalogs that
// need an exotic rule can supply their own Selector.
//
// Example:
//
//	sel, nplurals, ok := plural.ByName("slavic")
//	if !ok {
//		sel, nplurals = plural.ForLanguage("ru")
//	}
//	form := sel(21) // 0 within nplurals bounds
package plural

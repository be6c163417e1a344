// Package catalog implements runtime translation lookup over compiled
// message catalogs: given a message id, optionally disambiguated by a
// context marker and/or a plural count, it resolves the localized string
// for a domain with well-defined fallback when a catalog is absent or a key
// is missing.
//
// The package allows you to:
//
//   - Build a Translations set from decoded catalog data and look messages
//     up by id, context, plural count and domain, with byte-sequence twins
//     for every lookup.
//   - Merge catalog sets domain-by-domain without clobbering unrelated keys,
//     and chain fallback sets consulted before degrading to source strings.
//   - Load the best-matching catalog file for an ordered locale preference
//     list from a conventional <base>/<locale>/LC_MESSAGES/<domain>.<ext>
//     tree, in JSON or YAML form.
//   - Swap in NullTranslations when no catalog exists; it shares the
//     Translator interface and returns every input unchanged, so calling
//     code never branches on catalog availability.
//
// # Lookup semantics
//
// Lookups are total functions. A miss never errors; it degrades in a fixed
// order: the full key (context + id, or the plural entry), then the simpler
// key (context dropped), then the fallback chain, and finally the
// untranslated input. Plural lookups without a catalog entry apply the
// universal default - a count of one selects the singular literal,
// everything else the plural literal - which is exactly what
// NullTranslations does, so a populated set and the null set are observably
// identical on inputs neither can satisfy.
//
// Plural-form selection inside a catalog entry uses the plural rule the
// catalog declares (see the plural package); the universal default never
// applies a locale rule.
//
// # Usage
//
//	translations, err := catalog.Load(ctx, "locales", []string{"fr-CA", "fr"}, "messages")
//	if err != nil {
//		log.Fatalf("broken catalog: %v", err)
//	}
//
//	translations.Gettext("Welcome")               // "Bienvenue"
//	translations.NGettext("%d file", "%d files", 3)
//	translations.PGettext("menu", "Open")         // context-disambiguated
//	translations.DGettext("errors", "Not found")  // another domain
//
// Sets loaded separately can be combined:
//
//	base.Add(extra, true)                 // register domain and merge
//	base.Merge(override, true)            // overlay keys, incoming wins
//	base.AddFallback(regionNeutral)       // consulted before source strings
//
// # Concurrency
//
// A Translations set is read-only with respect to lookups and safe for any
// number of concurrent readers once built. Merge, Add and AddFallback
// mutate the set; callers must serialize them against concurrent lookups on
// the same instance.
package catalog

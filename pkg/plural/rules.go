package plural

import "strings"

// Selector maps a count to a zero-based plural-form index. Selectors must
// be pure and deterministic: the same count always yields the same index.
type Selector func(n int) int

// Rule family names accepted by ByName and declared in catalog metadata.
const (
	RuleGermanic = "germanic" // nplurals=2: n != 1 selects the plural form
	RuleFrench   = "french"   // nplurals=2: n > 1 selects the plural form
	RuleOneForm  = "oneform"  // nplurals=1: single form for every count
	RuleSlavic   = "slavic"   // nplurals=3: one / few / many
	RuleArabic   = "arabic"   // nplurals=6: zero / one / two / few / many / other
)

// Germanic is the rule for English, German, Dutch and similar languages,
// and the universal default when a catalog declares no rule:
// form 0 for n == 1, form 1 otherwise.
var Germanic Selector = func(n int) int {
	if n == 1 || n == -1 {
		return 0
	}
	return 1
}

// French is the rule for French and Brazilian Portuguese: 0 and 1 share the
// singular form.
var French Selector = func(n int) int {
	if n > 1 || n < -1 {
		return 1
	}
	return 0
}

// OneForm is the rule for languages without grammatical number
// (Japanese, Chinese, Korean, Thai, Vietnamese).
var OneForm Selector = func(n int) int {
	return 0
}

// Slavic is the three-form rule for Russian, Ukrainian, Polish, Czech,
// Croatian and Serbian: form 0 for counts ending in 1 (but not 11), form 1
// for counts ending in 2-4 (but not 12-14), form 2 otherwise.
var Slavic Selector = func(n int) int {
	if n < 0 {
		n = -n
	}
	mod10 := n % 10
	mod100 := n % 100

	if mod10 == 1 && mod100 != 11 {
		return 0
	}
	if mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14) {
		return 1
	}
	return 2
}

// Arabic is the six-form rule: zero, one, two, few (3-10), many (11-99),
// other.
var Arabic Selector = func(n int) int {
	if n < 0 {
		n = -n
	}
	switch {
	case n == 0:
		return 0
	case n == 1:
		return 1
	case n == 2:
		return 2
	}
	mod100 := n % 100
	if mod100 >= 3 && mod100 <= 10 {
		return 3
	}
	if mod100 >= 11 {
		return 4
	}
	return 5
}

var rules = map[string]struct {
	selector Selector
	nplurals int
}{
	RuleGermanic: {Germanic, 2},
	RuleFrench:   {French, 2},
	RuleOneForm:  {OneForm, 1},
	RuleSlavic:   {Slavic, 3},
	RuleArabic:   {Arabic, 6},
}

// ByName resolves a rule family declared in catalog metadata. It returns
// the selector, the number of plural forms the rule selects between, and
// whether the name is known.
func ByName(name string) (Selector, int, bool) {
	r, ok := rules[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, 0, false
	}
	return r.selector, r.nplurals, true
}

// ForLanguage picks a rule family for a language code when a catalog
// declares none. It matches on the primary subtag of the code (e.g. "pt"
// from "pt-BR") and falls back to Germanic for unknown languages.
func ForLanguage(lang string) (Selector, int) {
	if i := strings.IndexAny(lang, "-_"); i != -1 {
		lang = lang[:i]
	}
	lang = strings.ToLower(lang)

	switch lang {
	case "ru", "uk", "pl", "cs", "sk", "hr", "sr", "be", "bs":
		return Slavic, 3
	case "fr", "pt":
		return French, 2
	case "ja", "zh", "ko", "th", "vi", "id", "ms":
		return OneForm, 1
	case "ar":
		return Arabic, 6
	default:
		return Germanic, 2
	}
}

package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Format renders numbers, currency amounts, percentages and timestamps
// according to a locale's conventions. It is immutable after creation and
// safe for concurrent use.
type Format struct {
	locale string
	loc    *time.Location
	digits string // ten digit runes, empty for latin

	decimalSeparator  string
	thousandSeparator string
	percentSymbol     string
	currencyBefore    bool

	dateFormat     string
	timeFormat     string
	dateTimeFormat string
}

// Option configures a Format during construction.
type Option func(*Format)

// WithTimezone renders timestamps in the given location instead of their
// own. Nil locations are ignored.
func WithTimezone(loc *time.Location) Option {
	return func(f *Format) {
		if loc != nil {
			f.loc = loc
		}
	}
}

// WithNumberingSystem overrides the digit set used for numeric output.
// Supported systems are "latn", "arab" and "default" (the locale's own
// preference). Unknown systems are ignored.
func WithNumberingSystem(system string) Option {
	return func(f *Format) {
		switch system {
		case "latn":
			f.digits = ""
		case "arab":
			f.digits = arabicIndicDigits
		case "default":
			// keep the locale preset
		}
	}
}

// WithDecimalSeparator sets the decimal separator character.
func WithDecimalSeparator(sep string) Option {
	return func(f *Format) {
		f.decimalSeparator = sep
	}
}

// WithThousandSeparator sets the thousand separator character.
func WithThousandSeparator(sep string) Option {
	return func(f *Format) {
		f.thousandSeparator = sep
	}
}

// WithDateFormat sets the date layout (time.Format reference layout).
func WithDateFormat(layout string) Option {
	return func(f *Format) {
		f.dateFormat = layout
	}
}

// WithTimeFormat sets the time-of-day layout.
func WithTimeFormat(layout string) Option {
	return func(f *Format) {
		f.timeFormat = layout
	}
}

// WithDateTimeFormat sets the combined date and time layout.
func WithDateTimeFormat(layout string) Option {
	return func(f *Format) {
		f.dateTimeFormat = layout
	}
}

const arabicIndicDigits = "٠١٢٣٤٥٦٧٨٩"

// New creates a Format for the given locale identifier. Unknown locales get
// US English conventions.
func New(locale string, opts ...Option) *Format {
	f := &Format{
		locale:            locale,
		loc:               time.Local,
		decimalSeparator:  ".",
		thousandSeparator: ",",
		percentSymbol:     "%",
		currencyBefore:    true,
		dateFormat:        "Jan 2, 2006",
		timeFormat:        "3:04:05 PM",
		dateTimeFormat:    "Jan 2, 2006, 3:04:05 PM",
	}
	f.applyLocalePreset(locale)

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// applyLocalePreset adjusts separators, digit set and layouts for the
// primary language of the locale.
func (f *Format) applyLocalePreset(locale string) {
	tag, err := language.Parse(locale)
	if err != nil {
		return
	}
	base, _ := tag.Base()

	switch base.String() {
	case "de", "es", "it", "pt", "nl", "tr":
		f.decimalSeparator = ","
		f.thousandSeparator = "."
		f.currencyBefore = false
		f.dateFormat = "02.01.2006"
		f.timeFormat = "15:04:05"
		f.dateTimeFormat = "02.01.2006 15:04:05"
	case "fr", "ru", "uk", "pl", "cs", "sv", "fi", "nb":
		f.decimalSeparator = ","
		f.thousandSeparator = " "
		f.currencyBefore = false
		f.dateFormat = "02/01/2006"
		f.timeFormat = "15:04:05"
		f.dateTimeFormat = "02/01/2006 15:04:05"
	case "ar":
		f.decimalSeparator = "٫"
		f.thousandSeparator = "٬"
		f.digits = arabicIndicDigits
		f.currencyBefore = false
	case "ja", "zh", "ko":
		f.dateFormat = "2006/01/02"
		f.timeFormat = "15:04:05"
		f.dateTimeFormat = "2006/01/02 15:04:05"
	}
}

// Locale returns the locale identifier the Format was created for.
func (f *Format) Locale() string { return f.locale }

// Number formats an integer with the locale's grouping separators.
func (f *Format) Number(n int64) string {
	return f.transliterate(f.group(n))
}

// Decimal formats a floating point number with grouping and the locale's
// decimal separator. Trailing fraction zeros are trimmed.
func (f *Format) Decimal(value float64) string {
	return f.transliterate(f.decimal(value, -1))
}

// Percent multiplies by 100 and appends the percent symbol: 0.34 -> "34%".
func (f *Format) Percent(value float64) string {
	return f.transliterate(f.decimal(value*100, -1)) + f.percentSymbol
}

// Currency formats an amount with the symbol of the ISO 4217 code, placed
// per the locale's convention. Amounts always carry two fraction digits.
func (f *Format) Currency(amount float64, code string) string {
	return f.currency(f.decimal(amount, 2), code)
}

// CompactDecimal renders a number in its compact magnitude form:
// 1234 -> "1K" (fractionDigits 0) or "1.2K" (fractionDigits 1).
func (f *Format) CompactDecimal(value float64, fractionDigits int) string {
	return f.transliterate(f.compact(value, fractionDigits))
}

// CompactCurrency renders a compact amount with the currency symbol:
// 1099.98 USD -> "$1K".
func (f *Format) CompactCurrency(amount float64, code string) string {
	return f.currency(f.compact(amount, 0), code)
}

// Scientific renders a number in normalized exponent form: 10000 -> "1E4".
func (f *Format) Scientific(value float64) string {
	if value == 0 {
		return f.transliterate("0E0")
	}

	negative := value < 0
	if negative {
		value = -value
	}

	exp := int(math.Floor(math.Log10(value)))
	mantissa := value / math.Pow10(exp)
	// Guard against log10 edge rounding (e.g. 999.999... landing on 10).
	if mantissa >= 10 {
		mantissa /= 10
		exp++
	}

	out := fmt.Sprintf("%s%sE%d", sign(negative), trimFraction(fmt.Sprintf("%.6f", mantissa), f.decimalSeparator), exp)
	return f.transliterate(out)
}

// Date formats the date part of a timestamp in the Format's timezone.
func (f *Format) Date(t time.Time) string {
	return t.In(f.loc).Format(f.dateFormat)
}

// Time formats the time-of-day part of a timestamp in the Format's timezone.
func (f *Format) Time(t time.Time) string {
	return t.In(f.loc).Format(f.timeFormat)
}

// DateTime formats a timestamp in the Format's timezone.
func (f *Format) DateTime(t time.Time) string {
	return t.In(f.loc).Format(f.dateTimeFormat)
}

// group renders an integer with thousand separators.
func (f *Format) group(n int64) string {
	negative := n < 0
	if negative {
		n = -n
	}

	str := fmt.Sprintf("%d", n)
	if len(str) > 3 {
		var groups []string
		for i := len(str); i > 0; i -= 3 {
			start := max(0, i-3)
			groups = append([]string{str[start:i]}, groups...)
		}
		str = strings.Join(groups, f.thousandSeparator)
	}

	return sign(negative) + str
}

// decimal renders a float with grouping and the locale decimal separator.
// fractionDigits of -1 keeps up to two digits and trims trailing zeros;
// otherwise exactly fractionDigits digits are kept.
func (f *Format) decimal(value float64, fractionDigits int) string {
	negative := value < 0
	if negative {
		value = -value
	}

	digits := fractionDigits
	if digits < 0 {
		digits = 2
	}

	scaled := math.Round(value * math.Pow10(digits))
	intPart := int64(scaled / math.Pow10(digits))
	fracPart := int64(scaled) - intPart*int64(math.Pow10(digits))

	out := f.group(intPart)
	if digits > 0 {
		frac := fmt.Sprintf("%0*d", digits, fracPart)
		if fractionDigits < 0 {
			frac = strings.TrimRight(frac, "0")
		}
		if frac != "" {
			out += f.decimalSeparator + frac
		}
	}

	return sign(negative) + out
}

// compact reduces a value to its magnitude suffix form.
func (f *Format) compact(value float64, fractionDigits int) string {
	negative := value < 0
	if negative {
		value = -value
	}

	suffix := ""
	switch {
	case value >= 1e12:
		value, suffix = value/1e12, "T"
	case value >= 1e9:
		value, suffix = value/1e9, "B"
	case value >= 1e6:
		value, suffix = value/1e6, "M"
	case value >= 1e3:
		value, suffix = value/1e3, "K"
	}

	out := trimFraction(fmt.Sprintf("%.*f", max(fractionDigits, 0), value), f.decimalSeparator)
	return sign(negative) + out + suffix
}

// currency attaches the currency symbol to an already formatted amount.
func (f *Format) currency(amount, code string) string {
	symbol, ok := currencySymbols[strings.ToUpper(code)]
	if !ok {
		// Unknown codes render as a suffix per CLDR fallback practice.
		return f.transliterate(amount) + " " + strings.ToUpper(code)
	}

	if f.currencyBefore {
		return symbol + f.transliterate(amount)
	}
	return f.transliterate(amount) + " " + symbol
}

// currencySymbols covers the codes catalogs in the wild actually use;
// anything else falls back to the ISO code itself.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"UAH": "₴",
	"PLN": "zł",
	"CHF": "CHF",
	"EGP": "ج.م.",
}

// trimFraction normalizes a fixed-point string: trailing fraction zeros go
// away and the dot is replaced with the locale separator.
func trimFraction(s, decimalSeparator string) string {
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return strings.Replace(s, ".", decimalSeparator, 1)
}

// transliterate swaps latin digits for the Format's digit set.
func (f *Format) transliterate(s string) string {
	if f.digits == "" {
		return s
	}
	digits := []rune(f.digits)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(digits[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func sign(negative bool) string {
	if negative {
		return "-"
	}
	return ""
}

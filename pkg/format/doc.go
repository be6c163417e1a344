// Package format renders numbers, currency amounts, percentages and
// timestamps according to a locale's conventions.
//
// A Format is built once per locale and reused; it is immutable and safe
// for concurrent use. Presets cover the separator, digit-set and layout
// conventions of the common language families, and every convention can be
// overridden with an option:
//
//	fmtEN := format.New("en_US")
//	fmtEN.Number(1234)            // "1,234"
//	fmtEN.Currency(1099.98, "USD") // "$1,099.98"
//	fmtEN.Percent(0.34)           // "34%"
//	fmtEN.CompactDecimal(1234, 0) // "1K"
//
//	fmtAR := format.New("ar_EG", format.WithNumberingSystem("default"))
//	fmtAR.Number(1234)            // "١٬٢٣٤"
//
// Timestamps render in the Format's timezone, which defaults to the local
// one:
//
//	eastern, _ := time.LoadLocation("US/Eastern")
//	f := format.New("en_US", format.WithTimezone(eastern))
//	f.DateTime(when)
//
// The package pairs naturally with lazy values: wrap an expensive
// formatting call in lazy.NewString so it only runs if the string is
// actually displayed.
package format

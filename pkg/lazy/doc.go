// Package lazy defers expensive computations until first use.
//
// A Value wraps a function and invokes it on the first read, caching the
// result so later reads are free. The typical use is a localized string
// whose construction needs catalog lookups or locale-aware formatting that
// may never be displayed:
//
//	greeting := lazy.NewString(func() (string, error) {
//		return translations.Gettext("Hello, world!"), nil
//	})
//
//	fmt.Printf("[%s]", greeting) // forces evaluation here, not at wrap time
//
// The String specialization behaves like the computed string wherever the
// enumerated operations suffice: fmt interpolation, concatenation on either
// side, equality and ordering. Sorting lazy strings yields the same order
// as sorting the eagerly computed values:
//
//	slices.SortFunc(greetings, (*lazy.String).Compare)
//
// Caching is on by default and a Value never re-decides after its first
// successful evaluation; construct with WithoutCache to re-invoke the
// function on every read. A failed computation is never cached and its
// error passes through unchanged.
//
// Clone shares the unevaluated closure between original and duplicate,
// while Snapshot pins the duplicate to the state at duplication time; see
// the method docs for the exact semantics.
//
// Evaluation itself is not synchronized: concurrent first reads may run the
// function more than once. This is an accepted limitation, not a contract.
package lazy

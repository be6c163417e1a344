package lazy

import "strings"

// String is a lazily computed string. It forwards the value-like operations
// the surrounding code needs - conversion, concatenation, formatting via
// fmt verbs, equality and ordering - to the computed result, forcing
// evaluation on first use. The operation set is deliberately enumerated;
// there is no open-ended proxying.
//
// Error-aware callers should read through Get. The operator-style methods
// (String, Concat, Prepend, Equal, Compare, Less) have no error channel and
// panic with the computation's own, unwrapped error; the error value is
// exactly what the deferred function returned.
type String struct {
	*Value[string]
}

// NewString wraps a deferred string computation.
func NewString(fn func() (string, error), opts ...Option) *String {
	return &String{Value: New(fn, opts...)}
}

// String forces evaluation and returns the computed value. It satisfies
// fmt.Stringer, so a lazy string interpolates with %s and %v exactly as the
// eagerly computed value would.
func (s *String) String() string {
	return s.MustGet()
}

// Concat returns the computed value followed by suffix (the lazy string as
// left operand).
func (s *String) Concat(suffix string) string {
	return s.MustGet() + suffix
}

// Prepend returns prefix followed by the computed value (the lazy string as
// right operand).
func (s *String) Prepend(prefix string) string {
	return prefix + s.MustGet()
}

// Equal reports whether both lazy strings evaluate to the same value.
func (s *String) Equal(other *String) bool {
	return s.MustGet() == other.MustGet()
}

// Compare orders two lazy strings exactly as their evaluated values would
// order, returning -1, 0 or 1.
func (s *String) Compare(other *String) int {
	return strings.Compare(s.MustGet(), other.MustGet())
}

// Less reports whether s orders before other. Suitable for sort comparators.
func (s *String) Less(other *String) bool {
	return s.MustGet() < other.MustGet()
}

// Clone returns a shallow duplicate sharing the unevaluated closure.
func (s *String) Clone() *String {
	return &String{Value: s.Value.Clone()}
}

// Snapshot returns a deep duplicate pre-seeded with the value as of
// duplication time; see Value.Snapshot.
func (s *String) Snapshot() (*String, error) {
	v, err := s.Value.Snapshot()
	if err != nil {
		return nil, err
	}
	return &String{Value: v}, nil
}

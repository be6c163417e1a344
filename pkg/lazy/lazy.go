package lazy

// Option configures a lazy value during construction.
type Option func(*settings)

type settings struct {
	cache bool
}

// WithoutCache disables result caching: every read re-invokes the deferred
// function. Useful when the computation depends on state that changes
// between reads.
func WithoutCache() Option {
	return func(s *settings) {
		s.cache = false
	}
}

// Value defers a computation until first read. The result is cached on
// success (unless WithoutCache is set) and reused for the lifetime of the
// Value; a failed computation is never cached, so a later read retries.
//
// Evaluation is not synchronized: concurrent first reads may invoke the
// deferred function more than once. Once a result is cached, reads are
// safe; callers needing a strict single-invocation guarantee across
// goroutines must serialize the first read themselves.
type Value[T any] struct {
	fn        func() (T, error)
	cache     bool
	evaluated bool
	result    T
}

// New wraps a deferred computation. The function is not invoked until the
// first read.
func New[T any](fn func() (T, error), opts ...Option) *Value[T] {
	s := settings{cache: true}
	for _, opt := range opts {
		opt(&s)
	}
	return &Value[T]{fn: fn, cache: s.cache}
}

// Get returns the computed value, invoking the deferred function on first
// read. Errors from the computation pass through unchanged, without
// wrapping, and are not cached.
func (v *Value[T]) Get() (T, error) {
	if v.cache && v.evaluated {
		return v.result, nil
	}

	result, err := v.fn()
	if err != nil {
		var zero T
		return zero, err
	}

	if v.cache {
		v.result = result
		v.evaluated = true
	}
	return result, nil
}

// MustGet is Get that panics with the computation's own error on failure.
func (v *Value[T]) MustGet() T {
	result, err := v.Get()
	if err != nil {
		panic(err)
	}
	return result
}

// Evaluated reports whether a result has been computed and cached.
func (v *Value[T]) Evaluated() bool {
	return v.evaluated
}

// Clone returns a shallow duplicate sharing the unevaluated closure: a
// mutation of any mutable state the deferred function captures is visible
// to both the original and the duplicate until each evaluates. A result
// already cached is carried over.
func (v *Value[T]) Clone() *Value[T] {
	dup := *v
	return &dup
}

// Snapshot returns a deep duplicate decoupled from future mutation of the
// captured state: the deferred function is evaluated at duplication time
// and the duplicate is pre-seeded with that result, while the original
// stays unevaluated and will observe state current at its own first read.
// An already cached result is snapshotted without re-evaluation.
func (v *Value[T]) Snapshot() (*Value[T], error) {
	dup := *v
	if !dup.evaluated {
		result, err := v.fn()
		if err != nil {
			return nil, err
		}
		dup.result = result
		dup.evaluated = true
		dup.cache = true
	}
	return &dup, nil
}

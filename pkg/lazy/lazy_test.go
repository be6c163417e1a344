package lazy_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/msgkit/pkg/lazy"
)

func TestValueCachesResult(t *testing.T) {
	counter := 0
	value := lazy.New(func() (int, error) {
		counter++
		return counter, nil
	})

	got, err := value.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = value.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, got, "cached result is reused")
	assert.Equal(t, 1, counter, "function runs once")
}

func TestValueWithoutCache(t *testing.T) {
	counter := 0
	value := lazy.New(func() (int, error) {
		counter++
		return counter, nil
	}, lazy.WithoutCache())

	got, err := value.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = value.Get()
	require.NoError(t, err)
	assert.Equal(t, 2, got, "every read re-invokes the function")
}

func TestValueIsNotEvaluatedUntilRead(t *testing.T) {
	invoked := false
	value := lazy.New(func() (string, error) {
		invoked = true
		return "done", nil
	})

	assert.False(t, invoked)
	assert.False(t, value.Evaluated())

	_, err := value.Get()
	require.NoError(t, err)
	assert.True(t, invoked)
	assert.True(t, value.Evaluated())
}

func TestValueErrorPassesThroughUncached(t *testing.T) {
	boom := errors.New("message")
	fail := true
	value := lazy.New(func() (string, error) {
		if fail {
			return "", boom
		}
		return "recovered", nil
	})

	// The wrapper contributes nothing to the error: same value, same text.
	_, err := value.Get()
	require.Error(t, err)
	assert.Same(t, boom, err)
	assert.EqualError(t, err, "message")
	assert.False(t, value.Evaluated(), "failures are not cached")

	// A later read retries and may succeed.
	fail = false
	got, err := value.Get()
	require.NoError(t, err)
	assert.Equal(t, "recovered", got)
}

func TestValueClone(t *testing.T) {
	numbers := []int{1, 2}
	first := func() (int, error) {
		return numbers[0], nil
	}

	value := lazy.New(first)
	dup := value.Clone()

	// Mutation before either evaluates is visible to both: the shallow
	// duplicate shares the unevaluated closure.
	numbers = numbers[1:]
	assert.Equal(t, 2, value.MustGet())
	assert.Equal(t, 2, dup.MustGet())
}

func TestValueCloneCarriesCachedResult(t *testing.T) {
	counter := 0
	value := lazy.New(func() (int, error) {
		counter++
		return counter, nil
	})

	require.Equal(t, 1, value.MustGet())

	dup := value.Clone()
	assert.True(t, dup.Evaluated())
	assert.Equal(t, 1, dup.MustGet())
	assert.Equal(t, 1, counter)
}

func TestValueSnapshot(t *testing.T) {
	numbers := []int{1, 2}
	first := func() (int, error) {
		return numbers[0], nil
	}

	value := lazy.New(first)
	snap, err := value.Snapshot()
	require.NoError(t, err)

	// The deep duplicate is pinned to state at duplication time, while the
	// original observes the mutation at its own first read.
	numbers = numbers[1:]
	assert.Equal(t, 2, value.MustGet())
	assert.Equal(t, 1, snap.MustGet())
}

func TestValueSnapshotPropagatesError(t *testing.T) {
	boom := errors.New("cannot compute")
	value := lazy.New(func() (int, error) {
		return 0, boom
	})

	snap, err := value.Snapshot()
	assert.Nil(t, snap)
	assert.Same(t, boom, err)
	assert.False(t, value.Evaluated())
}

func TestMustGetPanicsWithOriginalError(t *testing.T) {
	boom := errors.New("original text")
	value := lazy.New(func() (int, error) {
		return 0, boom
	})

	defer func() {
		recovered := recover()
		require.NotNil(t, recovered)
		assert.Same(t, boom, recovered, "the panic value is the unwrapped error")
	}()
	value.MustGet()
}

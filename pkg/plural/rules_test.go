package plural_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/msgkit/pkg/plural"
)

func TestGermanic(t *testing.T) {
	tests := []struct {
		n    int
		form int
	}{
		{0, 1},
		{1, 0},
		{-1, 0},
		{2, 1},
		{21, 1},
		{100, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.form, plural.Germanic(tt.n), "n=%d", tt.n)
	}
}

func TestFrench(t *testing.T) {
	assert.Equal(t, 0, plural.French(0))
	assert.Equal(t, 0, plural.French(1))
	assert.Equal(t, 0, plural.French(-1))
	assert.Equal(t, 1, plural.French(2))
	assert.Equal(t, 1, plural.French(-5))
	assert.Equal(t, 1, plural.French(1000000))
}

func TestOneForm(t *testing.T) {
	for _, n := range []int{-10, 0, 1, 2, 100} {
		assert.Equal(t, 0, plural.OneForm(n), "n=%d", n)
	}
}

func TestSlavic(t *testing.T) {
	tests := []struct {
		n    int
		form int
	}{
		{1, 0},
		{21, 0},
		{101, 0},
		{11, 2},
		{2, 1},
		{3, 1},
		{4, 1},
		{22, 1},
		{12, 2},
		{13, 2},
		{14, 2},
		{5, 2},
		{0, 2},
		{100, 2},
		{-3, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.form, plural.Slavic(tt.n), "n=%d", tt.n)
	}
}

func TestArabic(t *testing.T) {
	tests := []struct {
		n    int
		form int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 3},
		{10, 3},
		{103, 3},
		{11, 4},
		{99, 4},
		{111, 4},
		{100, 5},
		{102, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.form, plural.Arabic(tt.n), "n=%d", tt.n)
	}
}

func TestByName(t *testing.T) {
	sel, nplurals, ok := plural.ByName("slavic")
	require.True(t, ok)
	require.NotNil(t, sel)
	assert.Equal(t, 3, nplurals)
	assert.Equal(t, 0, sel(21))

	// Name matching is case-insensitive and tolerant of whitespace.
	_, _, ok = plural.ByName(" Germanic ")
	assert.True(t, ok)

	sel, nplurals, ok = plural.ByName("klingon")
	assert.False(t, ok)
	assert.Nil(t, sel)
	assert.Zero(t, nplurals)
}

func TestForLanguage(t *testing.T) {
	tests := []struct {
		lang     string
		n        int
		form     int
		nplurals int
	}{
		{"en", 2, 1, 2},
		{"ru", 22, 1, 3},
		{"ru-RU", 22, 1, 3},
		{"pt_BR", 0, 0, 2},
		{"ja", 5, 0, 1},
		{"ar", 2, 2, 6},
		{"xx", 1, 0, 2}, // unknown falls back to germanic
		{"", 2, 1, 2},
	}

	for _, tt := range tests {
		sel, nplurals := plural.ForLanguage(tt.lang)
		require.NotNil(t, sel, "lang=%s", tt.lang)
		assert.Equal(t, tt.nplurals, nplurals, "lang=%s", tt.lang)
		assert.Equal(t, tt.form, sel(tt.n), "lang=%s n=%d", tt.lang, tt.n)
	}
}

func TestSelectorsAreDeterministic(t *testing.T) {
	for name := range map[string]struct{}{"germanic": {}, "french": {}, "oneform": {}, "slavic": {}, "arabic": {}} {
		sel, nplurals, ok := plural.ByName(name)
		require.True(t, ok, name)
		for n := -5; n <= 120; n++ {
			first := sel(n)
			assert.Equal(t, first, sel(n), "%s must be deterministic for n=%d", name, n)
			assert.GreaterOrEqual(t, first, 0, "%s n=%d", name, n)
			assert.Less(t, first, nplurals, "%s index out of declared range for n=%d", name, n)
		}
	}
}

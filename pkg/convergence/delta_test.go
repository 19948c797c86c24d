package convergence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelta_IdenticalIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Delta("", ""))
	assert.Equal(t, 0.0, Delta("abc", "abc"))
	long := strings.Repeat("document body ", 100)
	assert.Equal(t, 0.0, Delta(long, long))
}

func TestDelta_EmptyVsNonEmptyIsOne(t *testing.T) {
	assert.Equal(t, 1.0, Delta("", "anything"))
	assert.Equal(t, 1.0, Delta("anything", ""))
}

func TestDelta_Symmetric(t *testing.T) {
	a := "The quick brown fox"
	b := "The quick brown fox jumps over the lazy dog"
	assert.Equal(t, Delta(a, b), Delta(b, a))
}

func TestDelta_Bounds(t *testing.T) {
	cases := [][2]string{
		{"abc", "abd"},
		{"short", "a completely different and much longer text"},
		{"x", "y"},
		{"same length", "different it"},
	}
	for _, c := range cases {
		d := Delta(c[0], c[1])
		assert.GreaterOrEqual(t, d, 0.0)
		assert.LessOrEqual(t, d, 1.0)
		assert.Positive(t, d, "non-identical strings must have delta > 0")
	}
}

func TestDelta_MonotonicForAppends(t *testing.T) {
	// Appending more text yields a larger delta.
	base := strings.Repeat("stable content ", 20)
	small := base + "(revised)"
	large := base + strings.Repeat("a large new section ", 20)

	assert.Less(t, Delta(base, small), Delta(base, large))
}

func TestDelta_SameLengthEdit(t *testing.T) {
	// A pure length ratio would report 0 here; the edit-distance
	// metric must not.
	assert.Positive(t, Delta("aaaa", "aaab"))
}

func TestDelta_SmallAppendBelowDefaultThreshold(t *testing.T) {
	// A one-line suffix on a sizeable document stays under the 0.05
	// default, mirroring the stability stop in practice.
	base := strings.Repeat("An established paragraph of the document.\n", 50)
	d := Delta(base, base+"(revised)\n")
	assert.Less(t, d, 0.05)
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"abc", "abc", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, levenshtein(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}

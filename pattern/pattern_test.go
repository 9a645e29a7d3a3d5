package pattern_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvsieve/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustNew builds a pattern or stops the test.
func mustNew(t *testing.T, bits ...int) pattern.Pattern {
	t.Helper()
	p, err := pattern.New(bits)
	require.NoError(t, err)

	return p
}

// TestNew_Validation verifies the two rejection classes of New.
func TestNew_Validation(t *testing.T) {
	_, err := pattern.New(nil)
	assert.ErrorIs(t, err, pattern.ErrEmptyPattern, "empty vector must be rejected")

	_, err = pattern.New([]int{0, 1, 2})
	assert.ErrorIs(t, err, pattern.ErrNotBinary, "value 2 must be rejected")

	p, err := pattern.New([]int{0, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, 3, p.Period())
	assert.Equal(t, "001", p.String())
}

// TestNew_CopiesInput ensures later mutation of the caller's slice is invisible.
func TestNew_CopiesInput(t *testing.T) {
	in := []int{1, 0, 0}
	p := mustNew(t, in...)
	in[0] = 0
	assert.Equal(t, []int{1, 0, 0}, p.Bits())

	out := p.Bits()
	out[1] = 1
	assert.Equal(t, []int{1, 0, 0}, p.Bits(), "Bits must return a copy")
}

// TestAt_NegativeWraps checks the mathematical modulus for negative integers.
func TestAt_NegativeWraps(t *testing.T) {
	p := mustNew(t, 0, 0, 1)
	assert.True(t, p.At(2))
	assert.True(t, p.At(-1))
	assert.True(t, p.At(-4))
	assert.False(t, p.At(-2))
	assert.False(t, pattern.Pattern{}.At(0), "zero value is never on")
}

func TestSegment(t *testing.T) {
	p, err := pattern.Single(5, 4)
	require.NoError(t, err)

	assert.Equal(t, []int{4, 9, 14, 19}, p.Segment(0, 20, 0))
	assert.Equal(t, []int{14, 19, 24, 29}, p.Segment(0, 20, 10), "shift offsets every point")
	assert.Equal(t, []int{-6, -1}, p.Segment(-10, 0, 0))
	assert.Nil(t, p.Segment(5, 4, 0), "inverted range is empty")
	assert.Equal(t, []int{4}, p.Segment(4, 4, 0), "bounds are inclusive")
}

func TestOnes(t *testing.T) {
	p := mustNew(t, 0, 0, 1, 1, 0, 1)
	assert.Equal(t, []int{2, 3, 5}, p.Ones())
	assert.Nil(t, mustNew(t, 0, 0).Ones())
	assert.Equal(t, 3, p.Count())
	assert.Equal(t, 0, pattern.Pattern{}.Count())
}

func TestTile(t *testing.T) {
	p := mustNew(t, 1, 0)
	tiled, err := p.Tile(6)
	require.NoError(t, err)
	assert.Equal(t, "101010", tiled.String())
	assert.True(t, pattern.Equivalent(p, tiled))
	assert.False(t, p.Equal(tiled), "Equal compares periods too")

	for _, n := range []int{0, -2, 3} {
		_, err := p.Tile(n)
		assert.ErrorIs(t, err, pattern.ErrBadTileLength, "length %d", n)
	}
}

func TestEquivalent(t *testing.T) {
	assert.True(t, pattern.Equivalent(mustNew(t, 1, 0, 0), mustNew(t, 1, 0, 0, 1, 0, 0)))
	assert.False(t, pattern.Equivalent(mustNew(t, 1, 0), mustNew(t, 1, 0, 0)))
	assert.True(t, pattern.Equivalent(pattern.Pattern{}, pattern.Pattern{}))
	assert.False(t, pattern.Equivalent(pattern.Pattern{}, mustNew(t, 1)))
}

// TestEquivalent_BeyondMaxPeriod compares patterns whose lcm could never be
// materialized.
func TestEquivalent_BeyondMaxPeriod(t *testing.T) {
	const m, n = 16384, 16383
	require.Greater(t, m*n, pattern.MaxPeriod)

	ones := func(k int) pattern.Pattern {
		bits := make([]int, k)
		for i := range bits {
			bits[i] = 1
		}
		return mustNew(t, bits...)
	}
	assert.True(t, pattern.Equivalent(ones(m), ones(n)))

	a, err := pattern.Single(m, 0)
	require.NoError(t, err)
	b, err := pattern.Single(n, 0)
	require.NoError(t, err)
	assert.False(t, pattern.Equivalent(a, b))

	// Period 6 and period 4 patterns that both repeat every 2.
	assert.True(t, pattern.Equivalent(mustNew(t, 0, 1, 0, 1, 0, 1), mustNew(t, 0, 1, 0, 1)))
	assert.False(t, pattern.Equivalent(mustNew(t, 0, 1, 0, 1, 0, 1), mustNew(t, 1, 0, 0, 1)))
}

// TestSegment_NearMaxInt makes sure the scan stops at maxVal instead of
// wrapping around.
func TestSegment_NearMaxInt(t *testing.T) {
	p, err := pattern.Single(5, 4)
	require.NoError(t, err)

	got := p.Segment(math.MaxInt-20, math.MaxInt, 0)
	require.NotEmpty(t, got)
	for _, x := range got {
		assert.GreaterOrEqual(t, x, math.MaxInt-20)
	}
	assert.Len(t, got, 4)

	assert.Len(t, p.Segment(math.MinInt, math.MinInt+20, 0), 4)
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "|", pattern.OpUnion.String())
	assert.Equal(t, "&", pattern.OpIntersection.String())
	assert.Equal(t, "+", pattern.OpSymmetricDifference.String())
	assert.Equal(t, "?", pattern.Op(42).String())
}

func TestSingle(t *testing.T) {
	p, err := pattern.Single(4, -1)
	require.NoError(t, err)
	assert.Equal(t, "0001", p.String())

	_, err = pattern.Single(0, 1)
	assert.ErrorIs(t, err, pattern.ErrEmptyPattern)

	_, err = pattern.Single(pattern.MaxPeriod+1, 0)
	assert.ErrorIs(t, err, pattern.ErrPeriodTooLarge)
}

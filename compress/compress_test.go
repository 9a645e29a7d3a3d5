package compress_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/lvsieve/compress"
	"github.com/katalvlaran/lvsieve/expr"
	"github.com/katalvlaran/lvsieve/residue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompress_DocumentedExample pins the canonical text of the reference set
// and checks it reproduces the set when re-parsed.
func TestCompress_DocumentedExample(t *testing.T) {
	seg := []int{2, 3, 5, 8, 11, 13, 14}
	res, err := compress.Compress(seg)
	require.NoError(t, err)
	assert.Equal(t, "3@2|5@3", res.String())
	assert.Equal(t, 2, res.Low)
	assert.Equal(t, 14, res.High)

	p, err := expr.Parse(res.String())
	require.NoError(t, err)
	assert.Equal(t, seg, p.Segment(2, 14, 0))
	assert.Equal(t, seg, res.Segment())
}

func TestCompress_InsufficientPoints(t *testing.T) {
	for _, in := range [][]int{nil, {}, {1}, {4, 4, 4}} {
		_, err := compress.Compress(in)
		assert.ErrorIs(t, err, compress.ErrInsufficientPoints, "%v", in)
	}

	res, err := compress.Compress([]int{1, 2})
	require.NoError(t, err, "two distinct points is the minimum")
	assert.Equal(t, "1@1", res.String())
}

func TestCompress_UnsortedWithDuplicates(t *testing.T) {
	in := []int{14, 2, 8, 3, 3, 13, 5, 11, 2}
	orig := slices.Clone(in)
	res, err := compress.Compress(in)
	require.NoError(t, err)
	assert.Equal(t, "3@2|5@3", res.String())
	assert.Equal(t, orig, in, "input must not be modified")
}

func TestCompress_Shapes(t *testing.T) {
	cases := []struct {
		name string
		in   []int
		want string
	}{
		{"contiguous", []int{3, 4, 5, 6}, "1@3"},
		{"two far points", []int{0, 5}, "5@0"},
		{"single residue", []int{4, 9, 14, 19}, "5@4"},
		{"negative", []int{-6, -3, 0, 3}, "3@-6"},
		{"overlapping residues", []int{0, 2, 3, 4, 6, 8, 9, 10}, "2@0|3@3"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, err := compress.Compress(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.want, res.String())
			assert.Equal(t, c.in, res.Segment())
		})
	}
}

// TestCompress_RandomRoundTrip checks the no-false-positive/no-omission
// invariant on seeded random sets.
func TestCompress_RandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 200; iter++ {
		lo := rng.Intn(40) - 20
		width := 2 + rng.Intn(60)
		var in []int
		for x := lo; x < lo+width; x++ {
			if rng.Intn(3) == 0 {
				in = append(in, x)
			}
		}
		if len(in) < 2 {
			continue
		}

		res, err := compress.Compress(in)
		require.NoError(t, err, "%v", in)
		assert.Equal(t, in, res.Segment(), "%v → %s", in, res)

		for _, term := range res.Terms {
			for _, x := range term.Segment(res.Low, res.High, 0) {
				assert.Contains(t, in, x, "term %s strays outside the input", term)
			}
		}

		// Determinism.
		again, err := compress.Compress(in)
		require.NoError(t, err)
		assert.Equal(t, res, again)

		// Re-parse reproduces the set inside the window. The term-wise
		// Segment needs no lcm, so no input is exempt.
		e, err := expr.ParseExpression(res.String())
		require.NoError(t, err, res.String())
		assert.Equal(t, in, e.Segment(res.Low, res.High, 0))
	}
}

func TestCompress_MaxModulus(t *testing.T) {
	_, err := compress.Compress([]int{0, 5}, compress.WithMaxModulus(2))
	assert.ErrorIs(t, err, compress.ErrInfeasible)
	assert.Contains(t, err.Error(), "point 0")

	res, err := compress.Compress([]int{0, 5}, compress.WithMaxModulus(5))
	require.NoError(t, err)
	assert.Equal(t, "5@0", res.String())

	// Later options override earlier ones.
	res, err = compress.Compress([]int{0, 5}, compress.WithMaxModulus(1), compress.WithMaxModulus(10))
	require.NoError(t, err)
	assert.Equal(t, "5@0", res.String())

	assert.Panics(t, func() { compress.WithMaxModulus(0) })
}

func TestCompress_SpanTooLarge(t *testing.T) {
	_, err := compress.Compress([]int{0, compress.MaxSpan})
	assert.ErrorIs(t, err, compress.ErrSpanTooLarge)

	maxInt := int(^uint(0) >> 1)
	_, err = compress.Compress([]int{-maxInt - 1, maxInt})
	assert.ErrorIs(t, err, compress.ErrSpanTooLarge, "overflowing width")
}

func TestBinary(t *testing.T) {
	p, err := expr.Parse("3@2|5@3")
	require.NoError(t, err)
	res, err := compress.Binary(p)
	require.NoError(t, err)
	assert.Equal(t, "3@2|5@3", res.String())
}

func TestResult_Pattern(t *testing.T) {
	res := compress.Result{
		Terms: []residue.Class{residue.MustParse("3@2"), residue.MustParse("5@3")},
		Low:   2, High: 14,
	}
	p, err := res.Pattern()
	require.NoError(t, err)
	assert.Equal(t, 15, p.Period())

	_, err = compress.Result{}.Pattern()
	assert.Error(t, err)
	assert.Nil(t, compress.Result{Low: 3, High: 1}.Segment())
}

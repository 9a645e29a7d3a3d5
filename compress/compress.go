package compress

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvsieve/expr"
	"github.com/katalvlaran/lvsieve/pattern"
	"github.com/katalvlaran/lvsieve/residue"
)

// Result is the outcome of a successful compression.
type Result struct {
	// Terms are the residue classes in discovery order, meant to be unioned.
	Terms []residue.Class
	// Low and High bound the window the terms reproduce exactly.
	Low, High int
}

// Compress searches for a union of residue classes equal to points inside
// [min(points), max(points)]. The input slice is not modified.
func Compress(points []int, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)

	set := slices.Clone(points)
	slices.Sort(set)
	set = slices.Compact(set)
	if len(set) < 2 {
		return Result{}, fmt.Errorf("%d distinct: %w", len(set), ErrInsufficientPoints)
	}

	low, high := set[0], set[len(set)-1]
	width := high - low + 1
	if width <= 0 || width > MaxSpan {
		return Result{}, fmt.Errorf("[%d, %d]: %w", low, high, ErrSpanTooLarge)
	}
	maxMod := width
	if cfg.maxModulus > 0 {
		maxMod = cfg.maxModulus
	}

	// Dense membership, indexed by x-low.
	target := make([]bool, width)
	remaining := make([]bool, width)
	for _, x := range set {
		target[x-low] = true
		remaining[x-low] = true
	}
	left := len(set)

	res := Result{Low: low, High: high}
	cursor := 0
	for left > 0 {
		for !remaining[cursor] {
			cursor++
		}
		n := low + cursor

		m := findModulus(target, cursor, maxMod)
		if m == 0 {
			return Result{}, fmt.Errorf("point %d, max modulus %d: %w", n, maxMod, ErrInfeasible)
		}

		term := residue.Class{Modulus: m, Shift: n}
		if !containsTerm(res.Terms, term) {
			res.Terms = append(res.Terms, term)
		}
		for i := cursor; i < width; i += m {
			if remaining[i] {
				remaining[i] = false
				left--
			}
		}
	}

	return res, nil
}

// Binary compresses the points of p within [0, period], the same window
// a sieve uses for its canonical segment.
func Binary(p pattern.Pattern, opts ...Option) (Result, error) {
	return Compress(p.Segment(0, p.Period(), 0), opts...)
}

// findModulus returns the smallest m in [1, maxMod] such that every index
// congruent to start mod m inside the window is in target, or 0.
// remaining ⊆ target, so a candidate that only touches uncovered points
// passes this test too; target is the weaker of the two conditions and
// lets later terms overlap points already covered.
func findModulus(target []bool, start, maxMod int) int {
	for m := 1; m <= maxMod; m++ {
		if fits(target, start, m) {
			return m
		}
	}

	return 0
}

// fits reports whether every index i ≡ start (mod m) in [0, len(set)) is set.
func fits(set []bool, start, m int) bool {
	for i := start % m; i < len(set); i += m {
		if !set[i] {
			return false
		}
	}

	return true
}

func containsTerm(terms []residue.Class, c residue.Class) bool {
	for _, t := range terms {
		if t.Equal(c) {
			return true
		}
	}

	return false
}

// String renders the canonical text "m@s|m@s|...".
func (r Result) String() string {
	return expr.Join(r.Terms)
}

// Pattern returns the union of the term binaries. The period is the lcm of
// all moduli and may exceed pattern.MaxPeriod for irregular inputs.
func (r Result) Pattern() (pattern.Pattern, error) {
	if len(r.Terms) == 0 {
		return pattern.Pattern{}, pattern.ErrEmptyPattern
	}
	bins := make([]pattern.Pattern, len(r.Terms))
	for i, t := range r.Terms {
		bins[i] = t.Binary()
	}

	return pattern.Reduce(pattern.OpUnion, bins...)
}

// Segment replays the terms over [Low, High] and returns the covered points
// in ascending order. For a Result returned by Compress it equals the
// sorted, de-duplicated input.
func (r Result) Segment() []int {
	if r.High < r.Low {
		return nil
	}
	hit := make([]bool, r.High-r.Low+1)
	for _, t := range r.Terms {
		for _, x := range t.Segment(r.Low, r.High, 0) {
			hit[x-r.Low] = true
		}
	}
	var out []int
	for i, ok := range hit {
		if ok {
			out = append(out, r.Low+i)
		}
	}

	return out
}

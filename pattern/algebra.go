package pattern

import "fmt"

// Combine applies op to a and b after tiling both to their least common
// period.
//
// Algorithm:
//  1. L = lcm(len(a), len(b)); fail with ErrPeriodTooLarge when L > MaxPeriod.
//  2. Tile a and b to length L.
//  3. Fold the tiled b into the tiled a word by word with op.
//
// The result period is exactly L.
//
// Complexity: O(L) time and O(L/8) bytes of memory.
func Combine(a, b Pattern, op Op) (Pattern, error) {
	if !op.valid() {
		return Pattern{}, fmt.Errorf("op %d: %w", int(op), ErrUnknownOp)
	}
	if a.IsZero() || b.IsZero() {
		return Pattern{}, ErrEmptyPattern
	}
	l, ok := lcm(a.n, b.n)
	if !ok {
		return Pattern{}, fmt.Errorf("lcm(%d, %d): %w", a.n, b.n, ErrPeriodTooLarge)
	}
	out := a.tile(l)
	op.apply(out, b.tile(l))

	return Pattern{n: l, bits: out}, nil
}

// Union returns the pattern on wherever a or b is on.
func Union(a, b Pattern) (Pattern, error) { return Combine(a, b, OpUnion) }

// Intersection returns the pattern on wherever both a and b are on.
func Intersection(a, b Pattern) (Pattern, error) { return Combine(a, b, OpIntersection) }

// SymmetricDifference returns the pattern on wherever exactly one of a, b is on.
func SymmetricDifference(a, b Pattern) (Pattern, error) {
	return Combine(a, b, OpSymmetricDifference)
}

// Reduce folds patterns left to right with op:
// ((p0 op p1) op p2) op ... A single pattern is returned unchanged.
func Reduce(op Op, patterns ...Pattern) (Pattern, error) {
	if len(patterns) == 0 {
		return Pattern{}, ErrEmptyPattern
	}
	acc := patterns[0]
	if acc.IsZero() {
		return Pattern{}, ErrEmptyPattern
	}
	for _, p := range patterns[1:] {
		var err error
		if acc, err = Combine(acc, p, op); err != nil {
			return Pattern{}, err
		}
	}

	return acc, nil
}

// GCD returns the greatest common divisor of |a| and |b|; GCD(0, 0) == 0.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of two positive integers, or 0 when
// either is non-positive or the result exceeds MaxPeriod.
func LCM(a, b int) int {
	l, ok := lcm(a, b)
	if !ok {
		return 0
	}

	return l
}

// lcm computes lcm(a, b) and reports whether it lies in [1, MaxPeriod].
func lcm(a, b int) (int, bool) {
	if a <= 0 || b <= 0 {
		return 0, false
	}
	q := a / GCD(a, b)
	if q > MaxPeriod/b {
		return 0, false
	}
	l := q * b

	return l, l <= MaxPeriod
}

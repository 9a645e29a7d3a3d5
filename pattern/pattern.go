package pattern

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// New builds a Pattern from a 0/1 vector. The input is copied.
//
// Errors:
//   - ErrEmptyPattern — len(bits) == 0.
//   - ErrNotBinary    — some element is neither 0 nor 1.
func New(bits []int) (Pattern, error) {
	if len(bits) == 0 {
		return Pattern{}, ErrEmptyPattern
	}
	out := bitset.New(uint(len(bits)))
	for i, b := range bits {
		switch b {
		case 0:
		case 1:
			out.Set(uint(i))
		default:
			return Pattern{}, fmt.Errorf("index %d holds %d: %w", i, b, ErrNotBinary)
		}
	}

	return Pattern{n: len(bits), bits: out}, nil
}

// Single returns the pattern of period modulus with one bit set at
// shift mod modulus. modulus must lie in [1, MaxPeriod].
func Single(modulus, shift int) (Pattern, error) {
	if modulus <= 0 {
		return Pattern{}, ErrEmptyPattern
	}
	if modulus > MaxPeriod {
		return Pattern{}, fmt.Errorf("period %d: %w", modulus, ErrPeriodTooLarge)
	}
	bits := bitset.New(uint(modulus))
	bits.Set(uint(mod(shift, modulus)))

	return Pattern{n: modulus, bits: bits}, nil
}

// Period returns the length of the pattern.
func (p Pattern) Period() int { return p.n }

// IsZero reports whether p is the unusable zero value.
func (p Pattern) IsZero() bool { return p.n == 0 }

// Bits returns a copy of the 0/1 vector.
func (p Pattern) Bits() []int {
	out := make([]int, p.n)
	for i := range out {
		if p.test(i) {
			out[i] = 1
		}
	}

	return out
}

// At reports whether integer x is switched on. Negative x wraps like a
// mathematical modulus, so At(-1) reads the last bit of the period.
func (p Pattern) At(x int) bool {
	if p.n == 0 {
		return false
	}

	return p.test(mod(x, p.n))
}

// Ones returns the set indices within one period, ascending.
func (p Pattern) Ones() []int {
	if p.n == 0 {
		return nil
	}
	var out []int
	for i, ok := p.bits.NextSet(0); ok && i < uint(p.n); i, ok = p.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}

	return out
}

// Count returns the number of set bits in one period.
func (p Pattern) Count() int {
	if p.n == 0 {
		return 0
	}

	return int(p.bits.Count())
}

// Segment returns every x in [minVal, maxVal] (both inclusive) for which the
// pattern is on, each offset by shift. An inverted range yields nil.
func (p Pattern) Segment(minVal, maxVal, shift int) []int {
	if p.n == 0 || minVal > maxVal {
		return nil
	}
	var out []int
	for x := minVal; ; x++ {
		if p.test(mod(x, p.n)) {
			out = append(out, x+shift)
		}
		if x == maxVal {
			break
		}
	}

	return out
}

// Tile repeats the pattern end-to-end up to length, which must be a positive
// multiple of the period. The tiled pattern describes the same integers.
func (p Pattern) Tile(length int) (Pattern, error) {
	if p.n == 0 || length <= 0 || length%p.n != 0 {
		return Pattern{}, ErrBadTileLength
	}

	return Pattern{n: length, bits: p.tile(length)}, nil
}

// tile copies every set bit of p into a fresh bitset of the given length,
// which the caller guarantees is a multiple of the period.
//
// Complexity: O(length · Count / Period).
func (p Pattern) tile(length int) *bitset.BitSet {
	out := bitset.New(uint(length))
	for _, i := range p.Ones() {
		for k := i; k < length; k += p.n {
			out.Set(uint(k))
		}
	}

	return out
}

// Equal reports whether p and q have the same period and bits.
// Patterns describing the same integers at different periods are not Equal;
// use Equivalent for that.
func (p Pattern) Equal(q Pattern) bool {
	if p.n != q.n {
		return false
	}
	if p.n == 0 {
		return true
	}

	return p.bits.Equal(q.bits)
}

// Equivalent reports whether p and q switch on the same integers.
//
// Two sequences agreeing everywhere share the periods m and n, hence
// gcd(m, n). So p and q are equivalent exactly when both repeat every
// g = gcd(m, n) and agree on [0, g). No lcm is formed, so the answer is
// exact for any pair of periods.
//
// Complexity: O(m + n).
func Equivalent(p, q Pattern) bool {
	if p.IsZero() || q.IsZero() {
		return p.IsZero() && q.IsZero()
	}
	g := GCD(p.n, q.n)
	if !p.repeats(g) || !q.repeats(g) {
		return false
	}
	for i := 0; i < g; i++ {
		if p.test(i) != q.test(i) {
			return false
		}
	}

	return true
}

// repeats reports whether bit i equals bit i-g across the whole period.
// g must divide the period.
func (p Pattern) repeats(g int) bool {
	for i := g; i < p.n; i++ {
		if p.test(i) != p.test(i-g) {
			return false
		}
	}

	return true
}

// String renders the bits as a compact digit string, e.g. "00110".
func (p Pattern) String() string {
	var sb strings.Builder
	sb.Grow(p.n)
	for i := 0; i < p.n; i++ {
		if p.test(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// test reads bit i, 0 ≤ i < n.
func (p Pattern) test(i int) bool { return p.bits.Test(uint(i)) }

// mod returns x mod n in [0, n).
func mod(x, n int) int {
	r := x % n
	if r < 0 {
		r += n
	}

	return r
}

package residue

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsieve/pattern"
)

// Class is the residue class {x : x ≡ Shift (mod Modulus)}.
// Build it with New or Parse; a Class is immutable once built.
type Class struct {
	Modulus int
	Shift   int
}

// New returns the class modulus@shift.
// Returns ErrInvalidModulus when modulus ≤ 0.
func New(modulus, shift int) (Class, error) {
	if modulus <= 0 {
		return Class{}, fmt.Errorf("%d@%d: %w", modulus, shift, ErrInvalidModulus)
	}

	return Class{Modulus: modulus, Shift: shift}, nil
}

// Parse reads a literal of the form "<modulus>@<shift>". Surrounding
// whitespace is ignored; signs are accepted on both integers, but a
// non-positive modulus fails with ErrInvalidModulus.
func Parse(literal string) (Class, error) {
	s := strings.TrimSpace(literal)
	left, right, ok := strings.Cut(s, "@")
	if !ok {
		return Class{}, fmt.Errorf("%q: %w", literal, ErrMalformedLiteral)
	}
	m, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return Class{}, fmt.Errorf("%q: modulus: %w", literal, ErrMalformedLiteral)
	}
	sh, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return Class{}, fmt.Errorf("%q: shift: %w", literal, ErrMalformedLiteral)
	}

	return New(m, sh)
}

// MustParse is Parse for literals known at compile time; it panics on error.
func MustParse(literal string) Class {
	c, err := Parse(literal)
	if err != nil {
		panic(err)
	}

	return c
}

// Period equals the modulus.
func (c Class) Period() int { return c.Modulus }

// Residue returns Shift reduced into [0, Modulus).
func (c Class) Residue() int {
	r := c.Shift % c.Modulus
	if r < 0 {
		r += c.Modulus
	}

	return r
}

// Normalize returns the equal class whose shift lies in [0, Modulus).
func (c Class) Normalize() Class {
	return Class{Modulus: c.Modulus, Shift: c.Residue()}
}

// Binary returns the period vector: Modulus zeros with a one at Residue().
// A Class that bypassed New, or whose modulus exceeds pattern.MaxPeriod,
// yields the zero Pattern.
func (c Class) Binary() pattern.Pattern {
	p, err := pattern.Single(c.Modulus, c.Shift)
	if err != nil {
		return pattern.Pattern{}
	}

	return p
}

// Contains reports whether x belongs to the class.
func (c Class) Contains(x int) bool {
	if c.Modulus <= 0 {
		return false
	}

	return mod(x, c.Modulus) == mod(c.Shift, c.Modulus)
}

// Segment lists every x in [minVal, maxVal] (inclusive) that belongs to the
// class, each offset by shift.
//
// Complexity: O((maxVal−minVal)/Modulus), it steps by the modulus instead of
// scanning the range.
func (c Class) Segment(minVal, maxVal, shift int) []int {
	if c.Modulus <= 0 || minVal > maxVal {
		return nil
	}
	m := c.Modulus
	r := mod(mod(c.Shift, m)-mod(minVal, m), m)
	if minVal > math.MaxInt-r {
		return nil
	}
	var out []int
	for x := minVal + r; x <= maxVal; x += m {
		out = append(out, x+shift)
		// The distance is taken unsigned: it is exact even when maxVal-x
		// does not fit an int.
		if uint(maxVal)-uint(x) < uint(m) {
			break
		}
	}

	return out
}

// Union combines the two binary forms with "|".
func (c Class) Union(other Class) (pattern.Pattern, error) {
	return pattern.Union(c.Binary(), other.Binary())
}

// Intersection combines the two binary forms with "&".
func (c Class) Intersection(other Class) (pattern.Pattern, error) {
	return pattern.Intersection(c.Binary(), other.Binary())
}

// SymmetricDifference combines the two binary forms with "+".
func (c Class) SymmetricDifference(other Class) (pattern.Pattern, error) {
	return pattern.SymmetricDifference(c.Binary(), other.Binary())
}

// Equal reports whether c and other denote the same term: same modulus and
// congruent shifts.
func (c Class) Equal(other Class) bool {
	if c.Modulus != other.Modulus {
		return false
	}
	if c.Modulus <= 0 {
		return c.Shift == other.Shift
	}

	return c.Residue() == other.Residue()
}

// String renders the literal "m@s" with the shift as given.
func (c Class) String() string {
	return strconv.Itoa(c.Modulus) + "@" + strconv.Itoa(c.Shift)
}

// mod returns x mod n in [0, n).
func mod(x, n int) int {
	r := x % n
	if r < 0 {
		r += n
	}

	return r
}

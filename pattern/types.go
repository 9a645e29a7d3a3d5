package pattern

import "github.com/bits-and-blooms/bitset"

// MaxPeriod bounds the period of any pattern produced by Combine or Single.
// lcm grows multiplicatively with coprime moduli, so a handful of
// literals can otherwise ask for gigabytes. At one bit per index a
// pattern of MaxPeriod takes 16 MiB.
const MaxPeriod = 1 << 27

// Pattern is one period of a periodic binary sequence over the integers.
// The zero value is not usable; build patterns with New.
//
// bits is never mutated after construction.
type Pattern struct {
	n    int
	bits *bitset.BitSet
}

// Op selects the boolean operator applied by Combine.
type Op int

const (
	// OpUnion keeps indices set in either operand ("|").
	OpUnion Op = iota

	// OpIntersection keeps indices set in both operands ("&").
	OpIntersection

	// OpSymmetricDifference keeps indices set in exactly one operand ("+").
	OpSymmetricDifference
)

// String returns the operator symbol.
func (op Op) String() string {
	switch op {
	case OpUnion:
		return "|"
	case OpIntersection:
		return "&"
	case OpSymmetricDifference:
		return "+"
	default:
		return "?"
	}
}

// apply folds src into dst in place, word by word.
func (op Op) apply(dst, src *bitset.BitSet) {
	switch op {
	case OpUnion:
		dst.InPlaceUnion(src)
	case OpIntersection:
		dst.InPlaceIntersection(src)
	default:
		dst.InPlaceSymmetricDifference(src)
	}
}

// valid reports whether op is one of the declared operators.
func (op Op) valid() bool {
	return op >= OpUnion && op <= OpSymmetricDifference
}

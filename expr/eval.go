package expr

import (
	"math"
	"slices"

	"github.com/katalvlaran/lvsieve/pattern"
	"github.com/katalvlaran/lvsieve/residue"
)

// Contains reports whether x belongs to every term of c.
// An empty conjunction contains nothing.
func (c Conjunction) Contains(x int) bool {
	if len(c.Terms) == 0 {
		return false
	}
	for _, t := range c.Terms {
		if !t.Contains(x) {
			return false
		}
	}

	return true
}

// Contains reports whether x satisfies some conjunction of e.
func (e Expression) Contains(x int) bool {
	for _, c := range e.Conjunctions {
		if c.Contains(x) {
			return true
		}
	}

	return false
}

// Segment lists every x in [minVal, maxVal] (inclusive) that e switches on,
// ascending, each offset by shift. It works term by term and never builds
// the period, so it serves expressions whose lcm is far beyond
// pattern.MaxPeriod.
//
// Each conjunction steps through its largest modulus and filters the
// candidates by the remaining terms.
//
// Complexity: O(Σ (maxVal−minVal)/maxModulus(c) · |c|) plus a sort.
func (e Expression) Segment(minVal, maxVal, shift int) []int {
	if minVal > maxVal {
		return nil
	}
	var out []int
	for _, c := range e.Conjunctions {
		if len(c.Terms) == 0 {
			continue
		}
		lead := c.Terms[0]
		for _, t := range c.Terms[1:] {
			if t.Modulus > lead.Modulus {
				lead = t
			}
		}
		for _, x := range lead.Segment(minVal, maxVal, 0) {
			if c.Contains(x) {
				out = append(out, x)
			}
		}
	}
	if len(e.Conjunctions) > 1 {
		slices.Sort(out)
		out = slices.Compact(out)
	}
	if shift != 0 {
		for i := range out {
			out[i] += shift
		}
	}

	return out
}

// FullPeriod returns the lcm of every modulus in e without the
// pattern.MaxPeriod cap. ok is false when the lcm overflows int or e holds
// no terms.
func (e Expression) FullPeriod() (period int, ok bool) {
	l := 1
	seen := false
	for _, c := range e.Conjunctions {
		for _, t := range c.Terms {
			if t.Modulus <= 0 {
				return 0, false
			}
			q := l / pattern.GCD(l, t.Modulus)
			if q > math.MaxInt/t.Modulus {
				return 0, false
			}
			l = q * t.Modulus
			seen = true
		}
	}

	return l, seen
}

// Union returns the expression switched on wherever a or b is.
func Union(a, b Expression) Expression {
	out := make([]Conjunction, 0, len(a.Conjunctions)+len(b.Conjunctions))
	out = append(out, a.Conjunctions...)
	out = append(out, b.Conjunctions...)

	return Expression{Conjunctions: out}
}

// Intersection returns the expression switched on wherever both a and b
// are. "&" distributes over "|", so every pair of conjunctions merges into
// one; the result has len(a)·len(b) conjunctions.
func Intersection(a, b Expression) Expression {
	out := make([]Conjunction, 0, len(a.Conjunctions)*len(b.Conjunctions))
	for _, ca := range a.Conjunctions {
		for _, cb := range b.Conjunctions {
			terms := make([]residue.Class, 0, len(ca.Terms)+len(cb.Terms))
			terms = append(terms, ca.Terms...)
			terms = append(terms, cb.Terms...)
			out = append(out, Conjunction{Terms: terms})
		}
	}

	return Expression{Conjunctions: out}
}

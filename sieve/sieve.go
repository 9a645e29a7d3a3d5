package sieve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsieve/compress"
	"github.com/katalvlaran/lvsieve/expr"
	"github.com/katalvlaran/lvsieve/pattern"
	"github.com/katalvlaran/lvsieve/residue"
)

// Sieve is a periodic 0/1 pattern over the integers together with its
// textual form.
//
// A sieve built from a formula keeps the parsed formula. When the formula's
// period is too large to materialize, pat stays zero and every query is
// answered from the formula's terms instead.
type Sieve struct {
	text    string
	pat     pattern.Pattern
	formula *expr.Expression
	period  int
	source  Source
	cfg     config
}

// FromBinary stores bits as the pattern and derives the text by compressing
// the canonical segment (the on-points of [0, len(bits)]).
//
// Errors: pattern.ErrNotBinary, ErrEmptyInput, or any compress error
// (compress.ErrInsufficientPoints when fewer than two points are on in the
// canonical window).
func FromBinary(bits []int, opts ...Option) (*Sieve, error) {
	if len(bits) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrEmptyInput, pattern.ErrEmptyPattern)
	}
	p, err := pattern.New(bits)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	res, err := compress.Binary(p, cfg.compress...)
	if err != nil {
		return nil, err
	}

	return &Sieve{text: res.String(), pat: p, period: p.Period(), source: SourceBinary, cfg: cfg}, nil
}

// FromPoints compresses an explicit integer set to canonical text, then
// parses that text back to obtain the sieve. Segment over the bounding
// range of points returns the distinct points, whatever the period of the
// discovered formula.
//
// Errors: ErrEmptyInput and compress errors.
func FromPoints(points []int, opts ...Option) (*Sieve, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrEmptyInput, compress.ErrInsufficientPoints)
	}
	cfg := newConfig(opts...)
	res, err := compress.Compress(points, cfg.compress...)
	if err != nil {
		return nil, err
	}
	text := res.String()
	e, err := expr.ParseExpression(text)
	if err != nil {
		return nil, fmt.Errorf("sieve: reparse %q: %w", text, err)
	}

	return fromFormula(text, e, SourcePoints, cfg)
}

// FromText parses a formula. The text is kept verbatim unless WithRecompress
// is given.
func FromText(text string, opts ...Option) (*Sieve, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: %w", ErrEmptyInput, expr.ErrMalformedLiteral)
	}
	e, err := expr.ParseExpression(text)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	s, err := fromFormula(text, e, SourceText, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.recompress {
		if s.text, err = s.Compressed(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// fromFormula evaluates e, keeping it symbolic when its period exceeds
// pattern.MaxPeriod.
func fromFormula(text string, e expr.Expression, source Source, cfg config) (*Sieve, error) {
	s := &Sieve{text: text, formula: &e, source: source, cfg: cfg}
	p, err := e.Pattern()
	switch {
	case err == nil:
		s.pat, s.period = p, p.Period()
	case errors.Is(err, pattern.ErrPeriodTooLarge):
		s.period, _ = e.FullPeriod()
	default:
		return nil, err
	}

	return s, nil
}

// Combine applies op to a and b. The result has period
// lcm(a.Period(), b.Period()).
//
// When both patterns are materialized and the lcm fits pattern.MaxPeriod the
// patterns are combined bit by bit and the text comes from compression;
// patterns too sparse to compress are spelled out one residue class per
// on-bit. Otherwise Union and Intersection of two formula-built sieves are
// combined symbolically. Any other combination fails with
// pattern.ErrPeriodTooLarge.
func Combine(a, b *Sieve, op pattern.Op, opts ...Option) (*Sieve, error) {
	cfg := newConfig(opts...)
	if a.Materialized() && b.Materialized() {
		p, err := pattern.Combine(a.pat, b.pat, op)
		if err == nil {
			return &Sieve{text: describe(p, cfg), pat: p, period: p.Period(), source: SourceBinary, cfg: cfg}, nil
		}
		if !errors.Is(err, pattern.ErrPeriodTooLarge) {
			return nil, fmt.Errorf("sieve: %s %s %s: %w", a, op, b, err)
		}
	}
	if a.formula == nil || b.formula == nil {
		return nil, fmt.Errorf("sieve: %s %s %s: %w", a, op, b, pattern.ErrPeriodTooLarge)
	}

	var e expr.Expression
	switch op {
	case pattern.OpUnion:
		e = expr.Union(*a.formula, *b.formula)
	case pattern.OpIntersection:
		e = expr.Intersection(*a.formula, *b.formula)
	default:
		return nil, fmt.Errorf("sieve: %s %s %s has no formula: %w", a, op, b, pattern.ErrPeriodTooLarge)
	}

	return fromFormula(e.String(), e, SourceText, cfg)
}

// describe returns the compressed text of p, or spells p out as one class
// of modulus Period per on-bit when compression fails.
func describe(p pattern.Pattern, cfg config) string {
	if res, err := compress.Binary(p, cfg.compress...); err == nil {
		return res.String()
	}
	n := p.Period()
	ones := p.Ones()
	if len(ones) == 0 {
		// The grammar has no empty literal; two disjoint classes stand in.
		m := max(n, 2)
		return fmt.Sprintf("(%d@0&%d@1)", m, m)
	}
	terms := make([]residue.Class, len(ones))
	for i, x := range ones {
		terms[i] = residue.Class{Modulus: n, Shift: x}
	}

	return expr.Join(terms)
}

// String returns the canonical text.
func (s *Sieve) String() string { return s.text }

// Pattern returns the underlying periodic pattern, or the zero Pattern when
// s is not Materialized.
func (s *Sieve) Pattern() pattern.Pattern { return s.pat }

// Materialized reports whether s holds a dense pattern. Only formulas whose
// period exceeds pattern.MaxPeriod are not materialized.
func (s *Sieve) Materialized() bool { return !s.pat.IsZero() }

// Period returns the sieve period: the lcm of its moduli for a formula.
// It is 0 when that lcm overflows int.
func (s *Sieve) Period() int { return s.period }

// Source reports which constructor built s.
func (s *Sieve) Source() Source { return s.source }

// Equivalent reports whether s and other switch on the same integers.
// It fails with pattern.ErrPeriodTooLarge unless both are Materialized.
func (s *Sieve) Equivalent(other *Sieve) (bool, error) {
	if !s.Materialized() || !other.Materialized() {
		return false, fmt.Errorf("sieve: compare %s with %s: %w", s, other, pattern.ErrPeriodTooLarge)
	}

	return pattern.Equivalent(s.pat, other.pat), nil
}

// Segment returns the integers in [minVal, maxVal] where the sieve is on.
func (s *Sieve) Segment(minVal, maxVal int) []int {
	return s.SegmentShift(minVal, maxVal, 0)
}

// SegmentShift is Segment with every point offset by shift.
func (s *Sieve) SegmentShift(minVal, maxVal, shift int) []int {
	if !s.Materialized() {
		return s.formula.Segment(minVal, maxVal, shift)
	}

	return s.pat.Segment(minVal, maxVal, shift)
}

// Intervals returns the successive differences of Segment(minVal, maxVal).
// A one-point segment yields that point unchanged.
func (s *Sieve) Intervals(minVal, maxVal int) []int {
	seg := s.Segment(minVal, maxVal)
	if len(seg) == 1 {
		return seg
	}
	out := make([]int, 0, max(len(seg)-1, 0))
	for i := 1; i < len(seg); i++ {
		out = append(out, seg[i]-seg[i-1])
	}

	return out
}

// UnitSegment maps each segment point p to (p−first)/(last−first).
// A one-point segment yields [0].
func (s *Sieve) UnitSegment(minVal, maxVal int) []float64 {
	seg := s.Segment(minVal, maxVal)
	switch len(seg) {
	case 0:
		return []float64{}
	case 1:
		return []float64{0}
	}
	lo, hi := seg[0], seg[len(seg)-1]
	span := float64(hi - lo)
	out := make([]float64, len(seg))
	for i, v := range seg {
		if span != 0 {
			out[i] = float64(v-lo) / span
		}
	}

	return out
}

// CanonicalSegment is Segment(0, Period()).
func (s *Sieve) CanonicalSegment() []int { return s.Segment(0, s.Period()) }

// CanonicalIntervals is Intervals(0, Period()).
func (s *Sieve) CanonicalIntervals() []int { return s.Intervals(0, s.Period()) }

// CanonicalUnitSegment is UnitSegment(0, Period()).
func (s *Sieve) CanonicalUnitSegment() []float64 { return s.UnitSegment(0, s.Period()) }

// Compressed returns the compressed text of the canonical segment. For a
// text-built sieve it may differ from String in term order and grouping
// while denoting the same points inside the canonical window.
//
// A sieve that is not Materialized has a canonical window wider than
// compress.MaxSpan and fails with compress.ErrSpanTooLarge.
func (s *Sieve) Compressed() (string, error) {
	if !s.Materialized() {
		return "", fmt.Errorf("sieve: canonical window [0, %d]: %w", s.period, compress.ErrSpanTooLarge)
	}
	res, err := compress.Binary(s.pat, s.cfg.compress...)
	if err != nil {
		return "", err
	}

	return res.String(), nil
}

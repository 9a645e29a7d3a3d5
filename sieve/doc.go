// Package sieve is the entry point of lvsieve: a periodic integer sieve in the
// sense of Xenakis, built from one of three sources and queried over any
// integer range.
//
// Construction (one named constructor per source):
//
//	FromText("5@4|6@1|(3@2&13@7)") // formula → pattern; text kept as given
//	FromPoints([]int{2, 3, 5, 8})   // points → compressed text → pattern
//	FromBinary([]int{0, 0, 1, 1})   // bits as-is; text from compression
//
// FromPoints always derives the pattern by re-parsing the compressed text,
// so every sieve's pattern comes from a textual canonical form.
//
// Irregular point sets compress to moduli whose lcm can run into the
// hundreds of billions. Such formulas are not materialized as a bit vector
// (see Materialized); queries then test each residue class directly, so
// FromPoints(S).Segment(min(S), max(S)) reproduces S for any S.
//
// Queries are pure functions of the pattern and the bounds:
//
//	Segment(lo, hi)      integers in [lo, hi] where the sieve is on
//	Intervals(lo, hi)    successive differences of the segment
//	UnitSegment(lo, hi)  segment points scaled to [0, 1]
//	Canonical*()         the same over [0, Period()]
//
// Edge policies:
//   - Intervals of a one-point segment is that point, not an empty slice.
//   - UnitSegment of a one-point segment is [0]; a zero span maps to zeros.
//   - Empty segments give empty (non-nil) slices for Intervals/UnitSegment.
//
// A Sieve is immutable and safe for concurrent use.
package sieve

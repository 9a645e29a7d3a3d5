// Package residue implements residue classes, the atomic periodic patterns
// of a sieve: "every integer congruent to Shift modulo Modulus".
//
// A Class is written m@s in the sieve grammar, so 5@4 is
// {..., -1, 4, 9, 14, 19, ...}. Its binary form has period m and a single
// set bit at s mod m.
//
// Two classes denote the same term when their moduli match and their
// shifts are congruent modulo that modulus (5@4 and 5@9 are equal).
// The textual form keeps the shift exactly as written so that the output
// of compression reads "starting at point s, every m-th integer".
//
// Combining classes yields a pattern.Pattern, never a Class: 2@0 | 3@0 is
// periodic with period 6 but is not a single residue class.
package residue

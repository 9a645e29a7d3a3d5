// Package compress finds a compact union of residue classes that reproduces
// an explicit finite set of integers.
//
// Overview:
//
//   - Input: a set S of at least two distinct integers (any order, duplicates
//     ignored). Its bounding range [min(S), max(S)] is the window in which
//     the result must match S exactly.
//   - Output: residue classes m₁@s₁ | m₂@s₂ | ... whose union, restricted to
//     the window, equals S. No false positives, no omissions.
//
// Algorithm (greedy cover with bounded trial moduli):
//
//  1. remaining := S, target := S.
//  2. While remaining is non-empty:
//     a. n := smallest point still in remaining.
//     b. For m = 1, 2, ..., MaxModulus: the candidate is m@n restricted to
//     the window. Accept the first candidate that lies inside target.
//     c. Record m@n (once) and drop its points from remaining.
//  3. If some n exhausts every modulus, fail with ErrInfeasible.
//
// The default MaxModulus is the window width max(S)−min(S)+1. At that
// modulus a candidate holds only n itself, so the default search always
// succeeds; ErrInfeasible is reachable only with a tighter WithMaxModulus.
//
// A true minimum cover is NP-hard. This search is deterministic and
// terminates after at most |S|·MaxModulus candidate checks; processing the
// smallest remaining point first and trying moduli in increasing order is
// what makes the output reproducible.
//
// Complexity:
//
//   - Time:  O(|S| · W · log W) for window width W (harmonic sum of W/m).
//   - Space: O(W) for the two dense membership vectors.
//
// Errors:
//
//   - ErrInsufficientPoints — fewer than two distinct values.
//   - ErrInfeasible         — the modulus cap was exhausted for some point.
//   - ErrSpanTooLarge       — the window is wider than MaxSpan.
package compress

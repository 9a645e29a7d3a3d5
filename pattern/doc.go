// Package pattern implements periodic 0/1 patterns over the integers and the
// boolean algebra used to combine them.
//
// 🚀 What is a periodic pattern?
//
//	A Pattern is one period of an infinite binary sequence. Bit i of the
//	pattern tells whether every integer x with x ≡ i (mod period) is
//	"on". The pattern 0 0 1 1 0 1 0 0 1 0 0 1 0 1 1 (period 15) switches
//	on 2, 3, 5, 8, 11, 13, 14, 17, 18, ... and also ..., -13, -12, -10.
//
// ✨ Algebra:
//
//	Two patterns of periods m and n are combined by extending (tiling)
//	both to L = lcm(m, n) and applying the operator bit by bit:
//	  • Union               — "|"
//	  • Intersection        — "&"
//	  • SymmetricDifference — "+"
//	The result always has period exactly L, even when a shorter period
//	would describe the same bits. Chained expressions reduce pairwise,
//	left to right (see Reduce).
//
// ⚙️ Usage:
//
//	a, _ := pattern.New([]int{0, 0, 1})       // 3@2
//	b, _ := pattern.New([]int{0, 0, 0, 1, 0}) // 5@3
//	u, _ := pattern.Union(a, b)               // period 15
//	fmt.Println(u.Segment(0, 14, 0))          // [2 3 5 8 11 13 14]
//
// Performance:
//
//   - New, Tile:   O(period)
//   - Combine:     O(lcm(m, n)) time, one bit of memory per index
//   - Equivalent:  O(m + n), no lcm is formed
//   - Segment:     O(maxVal − minVal)
//
// Bits are stored in a github.com/bits-and-blooms/bitset, so periods up to
// MaxPeriod (2^27) fit in 16 MiB and Combine works a machine word at a time.
//
// Patterns are immutable; every operation returns a fresh value, so they
// may be shared freely between goroutines.
package pattern

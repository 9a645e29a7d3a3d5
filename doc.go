// Package lvsieve is a toolkit for periodic integer sieves: infinite 0/1
// patterns over the integers in the sense of Xenakis, written as boolean
// formulas over residue classes.
//
// 🚀 What is a sieve?
//
//	A residue class m@s is "every m-th integer starting at s". Unions
//	("|") and intersections ("&") of residue classes describe rhythms,
//	scales and any other periodic selection of integers:
//
//	  3@2|5@3  →  ..., 2, 3, 5, 8, 11, 13, 14, 17, 18, ...   (period 15)
//
// ✨ What is inside?
//
//	pattern/  — periodic bit vectors and lcm-based union/intersection/xor
//	residue/  — residue classes m@s: binary form, segments, equality
//	expr/     — tokenizer, parser and serializer for the formula grammar
//	compress/ — greedy search for a compact formula reproducing a point set
//	sieve/    — the façade: build from text, points or bits, then query
//	cmd/sieve — command-line front end (parse, compress, binary, batch)
//
// Quick example:
//
//	s, _ := sieve.FromPoints([]int{2, 3, 5, 8, 11, 13, 14})
//	fmt.Println(s)                 // 3@2|5@3
//	fmt.Println(s.Segment(15, 30)) // [17 18 20 23 26 28 29]
//
// Every type is immutable and every operation is a pure function, so sieves
// can be shared between goroutines without locking.
//
//	go get github.com/katalvlaran/lvsieve
package lvsieve

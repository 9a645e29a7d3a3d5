// Package expr parses and serializes the textual sieve grammar.
//
// Grammar:
//
//	literal      ::= <positive-integer> "@" <integer>
//	group        ::= literal | "(" literal ( "&" literal )* ")"
//	conjunction  ::= group ( "&" group )*
//	expression   ::= conjunction ( "|" conjunction )*
//
// Examples: "5@4", "5@4|6@1", "(3@2&13@7)", "5@4|6@1|(3@2&13@7)".
//
// Parentheses only group; they never change precedence ("&" always binds
// tighter than "|") and they do not nest. "((3@2))" and "(3@2|5@1)" are
// rejected with ErrMalformedLiteral, as are unbalanced parentheses,
// dangling operators and empty input. Whitespace between tokens is ignored.
//
// Evaluation intersects the literals of each conjunction left to right and
// unions the conjunctions left to right, using package pattern for the
// period extension.
//
// Expressions can also be queried without evaluation: Contains and Segment
// test each term directly, so a formula whose period is too large to
// materialize still answers membership and range queries. Union and
// Intersection build combined trees that stay inside the grammar.
//
// Serialization goes the other way: Join renders a list of residue classes
// as a union ("m@s|m@s|..."), which is the only shape the compressor emits.
package expr

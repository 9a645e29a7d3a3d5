package sieve

import "errors"

// ErrEmptyInput indicates a constructor called with no bits, no points or
// blank text. The returned error also wraps the lower-level sentinel
// (pattern.ErrEmptyPattern, compress.ErrInsufficientPoints or
// expr.ErrMalformedLiteral).
var ErrEmptyInput = errors.New("sieve: empty input")

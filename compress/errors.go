package compress

import "errors"

var (
	// ErrInsufficientPoints indicates an input with fewer than two distinct values.
	ErrInsufficientPoints = errors.New("compress: need at least two distinct points")

	// ErrInfeasible indicates that no modulus up to the cap covers a
	// remaining point without touching integers outside the input set.
	ErrInfeasible = errors.New("compress: search exhausted all moduli up to the cap")

	// ErrSpanTooLarge indicates a bounding range wider than MaxSpan.
	ErrSpanTooLarge = errors.New("compress: point range is wider than MaxSpan")
)

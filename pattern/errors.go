package pattern

import "errors"

var (
	// ErrEmptyPattern indicates a bit vector of length zero.
	ErrEmptyPattern = errors.New("pattern: bit vector must have at least one element")

	// ErrNotBinary indicates a bit vector containing values other than 0 and 1.
	ErrNotBinary = errors.New("pattern: bit vector must contain only 0 and 1")

	// ErrPeriodTooLarge indicates that combining two patterns would need a
	// period above MaxPeriod.
	ErrPeriodTooLarge = errors.New("pattern: combined period exceeds MaxPeriod")

	// ErrBadTileLength indicates a Tile length that is not a positive
	// multiple of the pattern period.
	ErrBadTileLength = errors.New("pattern: tile length must be a positive multiple of the period")

	// ErrUnknownOp indicates an Op value outside Union/Intersection/SymmetricDifference.
	ErrUnknownOp = errors.New("pattern: unknown operator")
)

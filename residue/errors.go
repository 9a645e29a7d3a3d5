package residue

import "errors"

var (
	// ErrInvalidModulus indicates a residue class built with modulus ≤ 0.
	ErrInvalidModulus = errors.New("residue: modulus must be a positive integer")

	// ErrMalformedLiteral indicates text that is not of the form <int>@<int>.
	ErrMalformedLiteral = errors.New("residue: malformed literal, want <modulus>@<shift>")
)

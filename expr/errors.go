package expr

import "github.com/katalvlaran/lvsieve/residue"

// ErrMalformedLiteral is returned for any text outside the grammar. It is
// the same value as residue.ErrMalformedLiteral so callers can match either.
var ErrMalformedLiteral = residue.ErrMalformedLiteral

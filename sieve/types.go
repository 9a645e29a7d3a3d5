package sieve

// Source records which constructor built a Sieve.
type Source int

const (
	// SourceBinary — FromBinary or Combine.
	SourceBinary Source = iota
	// SourcePoints — FromPoints.
	SourcePoints
	// SourceText — FromText, or Combine of two formulas too large to
	// materialize.
	SourceText
)

func (s Source) String() string {
	switch s {
	case SourceBinary:
		return "binary"
	case SourcePoints:
		return "points"
	case SourceText:
		return "text"
	default:
		return "unknown"
	}
}

package compress

import "fmt"

// MaxSpan bounds max(S)−min(S)+1; the search keeps two dense vectors of
// that width.
const MaxSpan = 1 << 24

// Option customizes a single Compress call.
type Option func(*config)

// config is resolved per call; there is no package-level state.
type config struct {
	// maxModulus caps the trial moduli; 0 means "window width".
	maxModulus int
}

// WithMaxModulus caps the trial moduli at m. A cap below the window width
// can make the search fail with ErrInfeasible.
// Panics if m < 1.
func WithMaxModulus(m int) Option {
	if m < 1 {
		panic(fmt.Sprintf("compress: WithMaxModulus(%d)", m))
	}
	return func(c *config) {
		c.maxModulus = m
	}
}

// newConfig applies opts in order; later options win.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

package sieve

import "github.com/katalvlaran/lvsieve/compress"

// Option customizes sieve construction.
type Option func(*config)

type config struct {
	compress   []compress.Option
	recompress bool
}

// WithMaxModulus caps the compressor's trial moduli (see compress.WithMaxModulus).
// Panics if m < 1.
func WithMaxModulus(m int) Option {
	opt := compress.WithMaxModulus(m)
	return func(c *config) {
		c.compress = append(c.compress, opt)
	}
}

// WithRecompress makes FromText replace the given formula with the compressed
// form of its canonical segment. Other constructors always compress.
func WithRecompress() Option {
	return func(c *config) {
		c.recompress = true
	}
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

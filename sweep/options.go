package sweep

import (
	"math"

	"github.com/cwbudde/algo-sweep/core"
)

// Config holds the tunables shared by Build and Resolve.
type Config struct {
	// RelTol and AbsTol bound the difference allowed between the step-count
	// and step-size sequences of a row: |a-b| <= AbsTol + RelTol*|b|.
	RelTol float64
	AbsTol float64

	// MaxPoints caps the number of points a single row may generate.
	// Larger rows fail with ErrTooManyPoints.
	MaxPoints int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default tolerances and a per-row cap of 1<<24
// points.
func DefaultConfig() Config {
	return Config{
		RelTol:    core.DefaultRelTol,
		AbsTol:    core.DefaultAbsTol,
		MaxPoints: 1 << 24,
	}
}

// WithRelTolerance sets the relative tolerance used by Resolve.
func WithRelTolerance(rtol float64) Option {
	return func(cfg *Config) {
		if rtol >= 0 && !math.IsInf(rtol, 0) {
			cfg.RelTol = rtol
		}
	}
}

// WithAbsTolerance sets the absolute tolerance used by Resolve.
func WithAbsTolerance(atol float64) Option {
	return func(cfg *Config) {
		if atol >= 0 && !math.IsInf(atol, 0) {
			cfg.AbsTol = atol
		}
	}
}

// WithMaxPoints sets the per-row point cap.
func WithMaxPoints(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MaxPoints = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

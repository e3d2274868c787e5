// Package config provides the configuration management for the ckptcalc
// application. It defines the data structure for the run configuration,
// supplies the literal defaults of the measurement run, and performs
// validation on the configuration values.
package config

import (
	"math"

	apperrors "github.com/agbru/ckptcalc/internal/errors"
)

// Default configuration values.
// The measurement run is fixed: these are not overridable from the command
// line or the environment.
const (
	// DefaultX is the starting value of the recurrence.
	DefaultX = 0.001
	// DefaultDepth is the number of recurrence steps applied per run.
	DefaultDepth = 2_000_000_000
)

// DefaultIntervals returns the checkpoint intervals swept by the default
// run, in the order they are measured and printed.
func DefaultIntervals() []int {
	return []int{10, 50, 100, 500, 1000, 5000, 10000, 50000}
}

// AppConfig aggregates the parameters of one measurement run.
type AppConfig struct {
	// X is the starting value of the recurrence.
	X float64
	// Depth is the number of times the recurrence is applied.
	Depth int
	// Intervals lists the checkpoint intervals to sweep, in order.
	// Duplicates are measured again; the list is never reordered.
	Intervals []int
	// RunRecompute enables the zero-storage baseline after the sweep.
	RunRecompute bool
}

// Default returns the configuration of the standard measurement run.
func Default() AppConfig {
	return AppConfig{
		X:            DefaultX,
		Depth:        DefaultDepth,
		Intervals:    DefaultIntervals(),
		RunRecompute: false,
	}
}

// Validate checks the semantic consistency of the configuration parameters.
//
// Returns:
//   - error: An error of type ConfigError if the configuration is invalid,
//     nil otherwise.
func (c AppConfig) Validate() error {
	if math.IsNaN(c.X) || math.IsInf(c.X, 0) {
		return apperrors.NewConfigError("starting value must be finite, got %v", c.X)
	}
	if c.Depth < 0 {
		return apperrors.NewConfigError("depth cannot be negative: %d", c.Depth)
	}
	if len(c.Intervals) == 0 {
		return apperrors.NewConfigError("sweep must contain at least one checkpoint interval")
	}
	for i, k := range c.Intervals {
		if k <= 0 {
			return apperrors.NewConfigError("checkpoint interval must be strictly positive: %d (position %d)", k, i)
		}
	}
	return nil
}

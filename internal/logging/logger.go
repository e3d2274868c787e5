// Package logging builds the structured loggers used across ckptcalc.
// Logs always go to a dedicated writer (standard error by default) so that
// standard output carries nothing but the measurement table.
package logging

import (
	"io"
	"os"

	"github.com/rs/xid"
	"github.com/rs/zerolog"
)

// Field names shared by every component.
const (
	ComponentField = "component"
	RunIDField     = "run_id"
)

// New creates a JSON logger writing to w, tagged with the given component
// name and a timestamp.
func New(w io.Writer, component string) zerolog.Logger {
	return zerolog.New(w).With().
		Str(ComponentField, component).
		Timestamp().
		Logger()
}

// NewDefault creates the application logger on standard error at info level.
func NewDefault() zerolog.Logger {
	return New(os.Stderr, "ckptcalc").Level(zerolog.InfoLevel)
}

// Nop returns a logger that discards everything. Useful in tests.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// WithRunID derives a child logger carrying a fresh, globally unique run
// identifier so that every line of one measurement run can be correlated.
//
// Returns:
//   - zerolog.Logger: The child logger.
//   - xid.ID: The identifier attached to it.
func WithRunID(logger zerolog.Logger) (zerolog.Logger, xid.ID) {
	id := xid.New()
	return logger.With().Str(RunIDField, id.String()).Logger(), id
}

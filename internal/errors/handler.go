package apperrors

import (
	"errors"
	"fmt"
	"io"
)

// HandleRunError formats and prints a one-line status for a failed run and
// maps the error to a process exit code. Configuration and validation errors
// exit with ExitErrorConfig, anything else with ExitErrorGeneric.
//
// Parameters:
//   - err: The error that occurred.
//   - out: The io.Writer to which the status message will be written.
//
// Returns:
//   - int: The appropriate exit code for the error type.
func HandleRunError(err error, out io.Writer) int {
	if err == nil {
		return ExitSuccess
	}

	var cfgErr ConfigError
	var valErr ValidationError
	if errors.As(err, &cfgErr) || errors.As(err, &valErr) {
		fmt.Fprintf(out, "Status: Failure (Configuration). %v\n", err)
		return ExitErrorConfig
	}

	var polErr PolicyError
	if errors.As(err, &polErr) {
		fmt.Fprintf(out, "Status: Failure. The %s policy did not complete: %v\n", polErr.Policy, polErr.Cause)
		return ExitErrorGeneric
	}

	fmt.Fprintf(out, "Status: Failure. An unexpected error occurred: %v\n", err)
	return ExitErrorGeneric
}

// Command ckptcalc measures the memory/time tradeoff of checkpointing a
// floating-point recurrence. It takes no arguments: the run parameters are
// fixed. The report goes to standard output and diagnostics to standard
// error.
package main

import (
	"context"
	"os"

	"github.com/agbru/ckptcalc/internal/app"
	"github.com/agbru/ckptcalc/internal/config"
	apperrors "github.com/agbru/ckptcalc/internal/errors"
	"github.com/agbru/ckptcalc/internal/logging"
)

func main() {
	logger := logging.NewDefault()

	application, err := app.New(config.Default(), logger, os.Stderr)
	if err != nil {
		os.Exit(apperrors.HandleRunError(err, os.Stderr))
	}

	os.Exit(application.Run(context.Background(), os.Stdout))
}

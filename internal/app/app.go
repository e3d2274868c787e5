// Package app provides the core application structure for the ckptcalc
// binary. It wires the configuration, the policy factory and the logger
// together and drives one measurement run.
package app

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/agbru/ckptcalc/internal/config"
	apperrors "github.com/agbru/ckptcalc/internal/errors"
	"github.com/agbru/ckptcalc/internal/logging"
	"github.com/agbru/ckptcalc/internal/orchestration"
	"github.com/agbru/ckptcalc/internal/recurrence"
	"github.com/agbru/ckptcalc/internal/sysinfo"
)

// Application represents the ckptcalc application instance.
type Application struct {
	// Config holds the validated run configuration.
	Config config.AppConfig
	// Factory provides the storage policies.
	Factory orchestration.PolicyFactory
	// Logger receives diagnostics. It must not write to standard output.
	Logger zerolog.Logger
	// ErrWriter is the writer for failure reports (typically os.Stderr).
	ErrWriter io.Writer
}

// New creates a new Application instance for the given configuration.
//
// Parameters:
//   - cfg: The run configuration.
//   - logger: The application logger.
//   - errWriter: The writer for failure reports.
//
// Returns:
//   - *Application: A new application instance.
//   - error: A ConfigError if the configuration is invalid.
func New(cfg config.AppConfig, logger zerolog.Logger, errWriter io.Writer) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Application{
		Config:    cfg,
		Factory:   recurrence.NewFactory(logger),
		Logger:    logger,
		ErrWriter: errWriter,
	}, nil
}

// Run executes the measurement run: the storage baseline, the checkpoint
// sweep and, when enabled, the recompute baseline. The report is written
// to out; failures are reported on ErrWriter.
//
// Parameters:
//   - ctx: The context carrying tracing information.
//   - out: The writer for standard output.
//
// Returns:
//   - int: An exit code (0 for success, non-zero for errors).
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	logger, runID := logging.WithRunID(a.Logger)

	ctx, span := otel.Tracer("app").Start(ctx, "MeasurementRun")
	defer span.End()
	span.SetAttributes(
		attribute.String("run_id", runID.String()),
		attribute.Int("depth", a.Config.Depth),
		attribute.Int("sweep_entries", len(a.Config.Intervals)),
	)

	logger.Info().
		Object("build", GetVersionInfo()).
		Float64("x", a.Config.X).
		Int("depth", a.Config.Depth).
		Ints("intervals", a.Config.Intervals).
		Bool("recompute", a.Config.RunRecompute).
		Object("cpu", sysinfo.DetectCPU()).
		Msg("measurement run started")

	if err := a.run(ctx, out, logger); err != nil {
		logger.Error().Err(err).Msg("measurement run failed")
		return apperrors.HandleRunError(err, a.ErrWriter)
	}

	logger.Info().Msg("measurement run completed")
	return apperrors.ExitSuccess
}

func (a *Application) run(ctx context.Context, out io.Writer, logger zerolog.Logger) error {
	baseline, err := orchestration.RunBaseline(ctx, a.Factory, recurrence.PolicyStorage, a.Config)
	if err != nil {
		return err
	}
	orchestration.ReportBaseline(out, baseline)
	sysinfo.LogProcessMemory(logger, "baseline")

	if _, err := orchestration.ExecuteSweep(ctx, a.Factory, a.Config, out, logger); err != nil {
		return err
	}
	sysinfo.LogProcessMemory(logger, "sweep")

	if !a.Config.RunRecompute {
		return nil
	}
	recompute, err := orchestration.RunBaseline(ctx, a.Factory, recurrence.PolicyRecompute, a.Config)
	if err != nil {
		return err
	}
	orchestration.ReportBaseline(out, recompute)
	return nil
}

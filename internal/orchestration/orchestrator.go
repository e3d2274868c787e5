// Package orchestration drives a measurement run: one baseline invocation
// and a strictly sequential sweep of the checkpoint policy over the
// configured intervals.
package orchestration

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/ckptcalc/internal/cli"
	"github.com/agbru/ckptcalc/internal/config"
	apperrors "github.com/agbru/ckptcalc/internal/errors"
	"github.com/agbru/ckptcalc/internal/recurrence"
	"github.com/agbru/ckptcalc/pkg/models"
)

// PolicyFactory creates storage policies by name.
// *recurrence.Factory satisfies it.
type PolicyFactory interface {
	Create(name string, params recurrence.Params) (recurrence.Policy, error)
}

// BaselineResult is the outcome of a baseline (storage or recompute) run.
type BaselineResult struct {
	// Policy is the name of the policy that produced the result.
	Policy string
	// Final is the trajectory value at step depth.
	Final float64
	// MemoryMB is the estimated retained-set footprint.
	MemoryMB float64
	// Elapsed is measured around the whole policy call, allocation included.
	Elapsed time.Duration
}

// RunBaseline invokes a single policy on the configured start value and
// depth, timing the whole call.
//
// Parameters:
//   - ctx: The context carrying tracing information.
//   - factory: The source of policies.
//   - name: The policy to run (recurrence.PolicyStorage or PolicyRecompute).
//   - cfg: The run configuration.
//
// Returns:
//   - BaselineResult: The final value, memory estimate and outer timing.
//   - error: An error if the policy cannot be created or fails.
func RunBaseline(ctx context.Context, factory PolicyFactory, name string, cfg config.AppConfig) (BaselineResult, error) {
	policy, err := factory.Create(name, recurrence.Params{})
	if err != nil {
		return BaselineResult{}, err
	}
	start := time.Now()
	out, err := policy.Run(ctx, cfg.X, cfg.Depth)
	elapsed := time.Since(start)
	if err != nil {
		return BaselineResult{}, err
	}
	return BaselineResult{
		Policy:   name,
		Final:    out.Final,
		MemoryMB: out.MemoryMB,
		Elapsed:  elapsed,
	}, nil
}

// ReportBaseline writes the memory line and the result line of a baseline.
// The recompute baseline reports scalar-only storage.
func ReportBaseline(out io.Writer, res BaselineResult) {
	if res.Policy == recurrence.PolicyRecompute {
		cli.PrintScalarStorageUsed(out)
	} else {
		cli.PrintStorageUsed(out, res.MemoryMB)
	}
	cli.PrintBaselineResult(out, res.Policy, res.Final, res.Elapsed)
}

// ExecuteSweep runs the checkpoint policy once per configured interval, in
// list order, one entry at a time so that no concurrent work perturbs the
// timings. The header is written first and every row is written as soon as
// its entry completes.
//
// Parameters:
//   - ctx: The context carrying tracing information.
//   - factory: The source of checkpoint policies.
//   - cfg: The run configuration (start value, depth, intervals).
//   - out: The destination of the CSV table.
//   - logger: Receives one info line per entry.
//
// Returns:
//   - []models.MeasurementRecord: One record per interval, in order. On error,
//     the records measured so far.
//   - error: The first failure, wrapped with the interval that caused it.
func ExecuteSweep(ctx context.Context, factory PolicyFactory, cfg config.AppConfig, out io.Writer, logger zerolog.Logger) ([]models.MeasurementRecord, error) {
	records := make([]models.MeasurementRecord, 0, len(cfg.Intervals))
	cli.PrintSweepHeader(out)

	for _, k := range cfg.Intervals {
		policy, err := factory.Create(recurrence.PolicyCheckpoint, recurrence.Params{Interval: k})
		if err != nil {
			return records, apperrors.WrapError(err, "sweep entry K=%d", k)
		}
		res, err := policy.Run(ctx, cfg.X, cfg.Depth)
		if err != nil {
			return records, apperrors.WrapError(err, "sweep entry K=%d", k)
		}

		rec := models.MeasurementRecord{Interval: k, MemoryMB: res.MemoryMB, Elapsed: res.Elapsed}
		records = append(records, rec)
		cli.PrintSweepRow(out, rec)

		logger.Info().
			Int("interval", k).
			Int("retained", res.Retained).
			Float64("memory_mb", rec.MemoryMB).
			Float64("time_s", rec.Seconds()).
			Msg("sweep entry measured")
	}
	return records, nil
}

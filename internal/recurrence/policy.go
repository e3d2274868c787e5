package recurrence

import (
	"context"
	"time"

	apperrors "github.com/agbru/ckptcalc/internal/errors"
)

// Policy names, as registered in the Factory.
const (
	PolicyStorage    = "storage"
	PolicyCheckpoint = "checkpoint"
	PolicyRecompute  = "recompute"
)

// Outcome is the result of a single policy run.
type Outcome struct {
	// Final is the trajectory value at step depth.
	Final float64
	// Retained is the length of the retained set at the end of the run.
	// It is zero for the recompute policy, which keeps nothing.
	Retained int
	// MemoryMB is the estimated footprint of the retained set.
	MemoryMB float64
	// Elapsed is the wall-clock time of the policy's timed region.
	Elapsed time.Duration
}

// Policy defines a storage strategy for iterating the recurrence.
// Implementations are stateless: every call allocates and releases its own
// retained set, so a Policy may be reused freely.
type Policy interface {
	// Run applies the recurrence depth times starting from x.
	//
	// Parameters:
	//   - ctx: Carries tracing information. Runs are never canceled.
	//   - x: The starting value.
	//   - depth: The number of steps to apply (must be non-negative).
	//
	// Returns:
	//   - Outcome: The final value, retained count, memory estimate and timing.
	//   - error: A ValidationError if the arguments are out of range.
	Run(ctx context.Context, x float64, depth int) (Outcome, error)

	// Name returns the registry name of the policy (e.g., "checkpoint").
	Name() string
}

func validateDepth(depth int) error {
	if depth < 0 {
		return apperrors.NewValidationError("depth", "cannot be negative", depth)
	}
	return nil
}

func validateInterval(interval int) error {
	if interval <= 0 {
		return apperrors.NewValidationError("interval", "must be strictly positive", interval)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Full storage
// ─────────────────────────────────────────────────────────────────────────────

// Trajectory materializes every value from step 0 to step depth.
// Element i holds the value at step i. The caller owns the returned slice.
//
// At very large depths the allocation exceeds available memory and the Go
// runtime aborts the process; this is the expected failure mode of keeping
// everything.
func Trajectory(x float64, depth int) ([]float64, error) {
	if err := validateDepth(depth); err != nil {
		return nil, err
	}
	values := make([]float64, depth+1)
	values[0] = x
	for i := 1; i <= depth; i++ {
		values[i] = Step(values[i-1])
	}
	return values, nil
}

// StoragePolicy keeps the complete trajectory.
type StoragePolicy struct{}

// Name returns the name of the full-storage policy.
func (p *StoragePolicy) Name() string { return PolicyStorage }

// Run builds the full trajectory and reports its last element.
func (p *StoragePolicy) Run(ctx context.Context, x float64, depth int) (Outcome, error) {
	start := time.Now()
	values, err := Trajectory(x, depth)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{
		Final:    values[len(values)-1],
		Retained: len(values),
		MemoryMB: MemoryMB(len(values)),
		Elapsed:  time.Since(start),
	}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Checkpointing
// ─────────────────────────────────────────────────────────────────────────────

// Checkpoints keeps x, then one value every interval steps, and always the
// value at step depth. Element k (k ≥ 1) is the value at step
// min(k*interval, depth).
//
// The trajectory is walked once: each batch resumes from the last retained
// value, so every step is computed exactly once and skipped values are
// simply not kept. Nothing is recomputed.
func Checkpoints(x float64, depth, interval int) ([]float64, error) {
	if err := validateDepth(depth); err != nil {
		return nil, err
	}
	if err := validateInterval(interval); err != nil {
		return nil, err
	}
	retained := make([]float64, 0, depth/interval+2)
	retained = append(retained, x)
	for consumed := 0; consumed < depth; {
		steps := min(interval, depth-consumed)
		retained = append(retained, Advance(retained[len(retained)-1], steps))
		consumed += steps
	}
	return retained, nil
}

// CheckpointPolicy retains one value every Interval steps.
type CheckpointPolicy struct {
	// Interval is the number of steps between two retained values.
	Interval int
}

// Name returns the name of the checkpointing policy.
func (p *CheckpointPolicy) Name() string { return PolicyCheckpoint }

// CheckpointInterval returns the configured interval.
func (p *CheckpointPolicy) CheckpointInterval() int { return p.Interval }

// Run walks the trajectory in batches of Interval steps. The timed region
// covers the allocation of the retained set and stops after the last append.
func (p *CheckpointPolicy) Run(ctx context.Context, x float64, depth int) (Outcome, error) {
	if err := validateDepth(depth); err != nil {
		return Outcome{}, err
	}
	if err := validateInterval(p.Interval); err != nil {
		return Outcome{}, err
	}
	start := time.Now()
	retained, err := Checkpoints(x, depth, p.Interval)
	elapsed := time.Since(start)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{
		Final:    retained[len(retained)-1],
		Retained: len(retained),
		MemoryMB: MemoryMB(len(retained)),
		Elapsed:  elapsed,
	}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Recompute
// ─────────────────────────────────────────────────────────────────────────────

// RecomputePolicy keeps only the current scalar: the zero-memory baseline.
type RecomputePolicy struct{}

// Name returns the name of the recompute policy.
func (p *RecomputePolicy) Name() string { return PolicyRecompute }

// Run applies the recurrence without retaining any sequence.
func (p *RecomputePolicy) Run(ctx context.Context, x float64, depth int) (Outcome, error) {
	if err := validateDepth(depth); err != nil {
		return Outcome{}, err
	}
	start := time.Now()
	final := Advance(x, depth)
	return Outcome{
		Final:   final,
		Elapsed: time.Since(start),
	}, nil
}

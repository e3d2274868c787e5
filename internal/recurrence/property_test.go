package recurrence

import (
	"context"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func newProperties(minSuccessful int) *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = minSuccessful
	return gopter.NewProperties(parameters)
}

// TestCheckpointMatchesStorage_PropertyBased verifies that, for any starting
// value, depth and interval, the checkpoint policy reaches exactly the same
// final value as the full-storage policy. Both walk the identical update
// sequence, so equality is bit-for-bit.
func TestCheckpointMatchesStorage_PropertyBased(t *testing.T) {
	properties := newProperties(200)
	ctx := context.Background()

	properties.Property("checkpoint final equals storage final", prop.ForAll(
		func(x float64, depth, interval int) bool {
			full, err := (&StoragePolicy{}).Run(ctx, x, depth)
			if err != nil {
				t.Logf("storage failed: %v", err)
				return false
			}
			ckpt, err := (&CheckpointPolicy{Interval: interval}).Run(ctx, x, depth)
			if err != nil {
				t.Logf("checkpoint failed: %v", err)
				return false
			}
			return math.Float64bits(full.Final) == math.Float64bits(ckpt.Final)
		},
		gen.Float64Range(-2, 2),
		gen.IntRange(1, 3000),
		gen.IntRange(1, 5000),
	))

	properties.Property("recompute final equals storage final", prop.ForAll(
		func(x float64, depth int) bool {
			full, err := (&StoragePolicy{}).Run(ctx, x, depth)
			if err != nil {
				return false
			}
			re, err := (&RecomputePolicy{}).Run(ctx, x, depth)
			if err != nil {
				return false
			}
			return math.Float64bits(full.Final) == math.Float64bits(re.Final)
		},
		gen.Float64Range(-2, 2),
		gen.IntRange(0, 3000),
	))

	properties.TestingRun(t)
}

// TestRetainedSetShape_PropertyBased verifies the length and memory formulas
// of the checkpoint retained set.
func TestRetainedSetShape_PropertyBased(t *testing.T) {
	properties := newProperties(200)
	ctx := context.Background()

	properties.Property("length is ceil(depth/K)+1", prop.ForAll(
		func(depth, interval int) bool {
			retained, err := Checkpoints(0.001, depth, interval)
			if err != nil {
				return false
			}
			want := int(math.Ceil(float64(depth)/float64(interval))) + 1
			return len(retained) == want && len(retained) == RetainedLength(depth, interval)
		},
		gen.IntRange(1, 100_000),
		gen.IntRange(1, 60_000),
	))

	properties.Property("memory is length*8/1048576", prop.ForAll(
		func(depth, interval int) bool {
			out, err := (&CheckpointPolicy{Interval: interval}).Run(ctx, 0.001, depth)
			if err != nil {
				return false
			}
			return out.MemoryMB == float64(out.Retained)*8/1048576
		},
		gen.IntRange(0, 100_000),
		gen.IntRange(1, 60_000),
	))

	properties.Property("final element is the value at depth", prop.ForAll(
		func(x float64, depth, interval int) bool {
			retained, err := Checkpoints(x, depth, interval)
			if err != nil {
				return false
			}
			return retained[0] == x &&
				math.Float64bits(retained[len(retained)-1]) == math.Float64bits(Advance(x, depth))
		},
		gen.Float64Range(-1.5, 1.5),
		gen.IntRange(0, 2000),
		gen.IntRange(1, 2500),
	))

	properties.TestingRun(t)
}

// TestMemoryMonotonic_PropertyBased verifies that, for a fixed depth, a larger
// checkpoint interval never increases the memory estimate.
func TestMemoryMonotonic_PropertyBased(t *testing.T) {
	properties := newProperties(300)

	properties.Property("larger interval never uses more memory", prop.ForAll(
		func(depth, a, b int) bool {
			lo, hi := min(a, b), max(a, b)
			return MemoryMB(RetainedLength(depth, hi)) <= MemoryMB(RetainedLength(depth, lo))
		},
		gen.IntRange(0, 2_000_000_000),
		gen.IntRange(1, 100_000),
		gen.IntRange(1, 100_000),
	))

	properties.TestingRun(t)
}

// TestZeroDepthIdentity_PropertyBased verifies that every policy returns its
// starting value unchanged when no step is applied.
func TestZeroDepthIdentity_PropertyBased(t *testing.T) {
	properties := newProperties(100)
	ctx := context.Background()

	properties.Property("depth 0 returns x", prop.ForAll(
		func(x float64, interval int) bool {
			for _, p := range []Policy{&StoragePolicy{}, &CheckpointPolicy{Interval: interval}, &RecomputePolicy{}} {
				out, err := p.Run(ctx, x, 0)
				if err != nil || math.Float64bits(out.Final) != math.Float64bits(x) {
					return false
				}
			}
			retained, err := Checkpoints(x, 0, interval)
			return err == nil && len(retained) == 1
		},
		gen.Float64Range(-1e6, 1e6),
		gen.IntRange(1, 1000),
	))

	properties.TestingRun(t)
}

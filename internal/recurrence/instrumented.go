package recurrence

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	apperrors "github.com/agbru/ckptcalc/internal/errors"
)

var (
	policyRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ckptcalc_policy_runs_total",
			Help: "The total number of storage policy runs processed",
		},
		[]string{"policy", "status"},
	)
	policyRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ckptcalc_policy_run_duration_seconds",
			Help:    "The duration of the timed region of storage policy runs in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12),
		},
		[]string{"policy"},
	)
	retainedValues = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ckptcalc_retained_values",
			Help: "Length of the retained set at the end of the last run of each policy",
		},
		[]string{"policy"},
	)
)

// intervalReporter is implemented by policies that have a checkpoint interval.
type intervalReporter interface {
	CheckpointInterval() int
}

// InstrumentedPolicy decorates a Policy with tracing, Prometheus metrics and
// debug logging. All instrumentation happens outside the wrapped policy's
// timed region, so Outcome.Elapsed is unaffected.
type InstrumentedPolicy struct {
	core   Policy
	logger zerolog.Logger
}

// Instrument wraps core with the cross-cutting concerns of a policy run.
// It panics if core is nil.
//
// Parameters:
//   - core: The policy to decorate.
//   - logger: The logger receiving one debug line per run.
//
// Returns:
//   - *InstrumentedPolicy: The decorated policy.
func Instrument(core Policy, logger zerolog.Logger) *InstrumentedPolicy {
	if core == nil {
		panic("recurrence: the core `Policy` implementation cannot be nil")
	}
	return &InstrumentedPolicy{core: core, logger: logger}
}

// Name delegates to the wrapped policy.
func (p *InstrumentedPolicy) Name() string {
	return p.core.Name()
}

// Unwrap returns the decorated policy.
func (p *InstrumentedPolicy) Unwrap() Policy {
	return p.core
}

// Run executes the wrapped policy inside a span, records its metrics and
// wraps any failure in a PolicyError.
func (p *InstrumentedPolicy) Run(ctx context.Context, x float64, depth int) (out Outcome, err error) {
	name := p.core.Name()
	ctx, span := otel.Tracer("recurrence").Start(ctx, "Run")
	defer span.End()
	span.SetAttributes(
		attribute.String("policy", name),
		attribute.Int("depth", depth),
	)

	interval := 0
	if r, ok := p.core.(intervalReporter); ok {
		interval = r.CheckpointInterval()
		span.SetAttributes(attribute.Int("interval", interval))
	}

	out, err = p.core.Run(ctx, x, depth)

	status := "success"
	if err != nil {
		status = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		err = apperrors.NewPolicyError(name, err)
	} else {
		policyRunDuration.WithLabelValues(name).Observe(out.Elapsed.Seconds())
		retainedValues.WithLabelValues(name).Set(float64(out.Retained))
	}
	policyRunsTotal.WithLabelValues(name, status).Inc()

	event := p.logger.Debug().
		Str("policy", name).
		Int("depth", depth).
		Dur("elapsed", out.Elapsed.Round(time.Microsecond)).
		Int("retained", out.Retained).
		Str("status", status)
	if interval > 0 {
		event = event.Int("interval", interval)
	}
	event.Msg("policy run completed")

	return out, err
}

/*
Package models defines the shared data structures produced by a measurement run.

These models are used for:
- **Sweep reporting**: one immutable record per checkpoint interval.
- **Golden data**: reference trajectories consumed by the recurrence tests.
*/

package models

import "time"

// MeasurementRecord is the result of one checkpoint sweep entry.
// It is created once per interval and never mutated after it is printed.
type MeasurementRecord struct {
	Interval int           `json:"interval"`  // Nombre de pas entre deux valeurs conservées.
	MemoryMB float64       `json:"memory_mb"` // Empreinte estimée de l'ensemble conservé.
	Elapsed  time.Duration `json:"elapsed"`   // Durée mesurée de la boucle.
}

// Seconds returns the elapsed wall-clock time in seconds.
func (r MeasurementRecord) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// TrajectoryCase is a single golden test case: the value reached after
// applying the recurrence Depth times from X. Final is stored as the
// shortest round-trip decimal string so that infinities survive JSON.
type TrajectoryCase struct {
	X     float64 `json:"x"`
	Depth int     `json:"depth"`
	Final string  `json:"final"`
}

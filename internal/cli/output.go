// Package cli formats the measurement report written to standard output.
// The format is line-oriented and fixed: memory figures use two decimals,
// values and timings use the shortest representation that round-trips.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/agbru/ckptcalc/pkg/models"
)

// SweepHeader is the header line of the checkpoint sweep table.
const SweepHeader = "K,Memory_MB,Time_s"

// FormatValue formats a trajectory value. Infinity is rendered as "+Inf".
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatSeconds formats an elapsed duration as seconds at full precision.
func FormatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'g', -1, 64)
}

// FormatMemoryMB formats a memory estimate with exactly two decimals.
func FormatMemoryMB(mb float64) string {
	return strconv.FormatFloat(mb, 'f', 2, 64)
}

// PrintStorageUsed writes the memory line of a storing baseline.
//
// Parameters:
//   - out: The destination writer.
//   - mb: The estimated retained-set footprint in megabytes.
func PrintStorageUsed(out io.Writer, mb float64) {
	fmt.Fprintf(out, "Storage used: %s MB\n", FormatMemoryMB(mb))
}

// PrintScalarStorageUsed writes the memory line of the recompute baseline,
// which keeps nothing but the current scalar.
func PrintScalarStorageUsed(out io.Writer) {
	fmt.Fprintln(out, "Storage used: ~0 MB (just scalars)")
}

// PrintBaselineResult writes the result line of a baseline run followed by
// a blank line.
//
// Parameters:
//   - out: The destination writer.
//   - label: The strategy label ("storage", "recompute").
//   - final: The final trajectory value.
//   - elapsed: The duration measured around the baseline call.
func PrintBaselineResult(out io.Writer, label string, final float64, elapsed time.Duration) {
	fmt.Fprintf(out, "With %s: %s in %ss\n\n", label, FormatValue(final), FormatSeconds(elapsed))
}

// PrintSweepHeader writes the CSV header of the checkpoint sweep.
func PrintSweepHeader(out io.Writer) {
	fmt.Fprintln(out, SweepHeader)
}

// FormatSweepRow renders one sweep record as "K,memory,seconds".
func FormatSweepRow(rec models.MeasurementRecord) string {
	return fmt.Sprintf("%d,%s,%s", rec.Interval, FormatMemoryMB(rec.MemoryMB), FormatSeconds(rec.Elapsed))
}

// PrintSweepRow writes one sweep record on its own line.
func PrintSweepRow(out io.Writer, rec models.MeasurementRecord) {
	fmt.Fprintln(out, FormatSweepRow(rec))
}

// Package recurrence iterates the recurrence x(n+1) = x(n)² + 1 under
// interchangeable storage policies. Each policy decides how much of the
// trajectory it keeps in memory while it runs:
//
//   - storage: every intermediate value (O(depth) memory),
//   - checkpoint: one value every K steps plus the final one,
//   - recompute: only the current scalar.
//
// All policies apply the identical update sequence, so their final values
// are bit-for-bit equal for the same starting value and depth.
package recurrence

// BytesPerValue is the size of one retained trajectory value (a float64).
const BytesPerValue = 8

// bytesPerMB converts byte counts to megabytes (1 MB = 1024×1024 bytes).
const bytesPerMB = 1024.0 * 1024.0

// Step applies the update rule f(v) = v*v + 1 once.
//
// The explicit float64 conversion forces the product to be rounded before
// the addition, which forbids the compiler from fusing the expression into a
// single FMA instruction. Results are therefore identical on every platform.
func Step(v float64) float64 {
	return float64(v*v) + 1.0
}

// Advance applies Step n times starting from x and returns the final value.
// Once the value exceeds roughly 1.34e154 the next step overflows to +Inf,
// which then stays at +Inf; no attempt is made to detect it.
func Advance(x float64, n int) float64 {
	v := x
	for i := 0; i < n; i++ {
		v = Step(v)
	}
	return v
}

// MemoryMB estimates the footprint, in megabytes, of a retained set holding
// n values.
func MemoryMB(n int) float64 {
	return float64(n) * BytesPerValue / bytesPerMB
}

// RetainedLength returns the number of values the checkpoint policy keeps
// for the given depth and interval: ceil(depth/interval) + 1.
// interval must be strictly positive.
func RetainedLength(depth, interval int) int {
	if depth <= 0 {
		return 1
	}
	batches := depth / interval
	if depth%interval != 0 {
		batches++
	}
	return batches + 1
}

package cli

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/agbru/ckptcalc/pkg/models"
)

func TestFormatValue(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   float64
		want string
	}{
		{677, "677"},
		{1.25, "1.25"},
		{0.001, "0.001"},
		{math.Inf(1), "+Inf"},
		{2.10066388901e+11, "2.10066388901e+11"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   time.Duration
		want string
	}{
		{1500 * time.Millisecond, "1.5"},
		{1234567 * time.Nanosecond, "0.001234567"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := FormatSeconds(tt.in); got != tt.want {
			t.Errorf("FormatSeconds(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMemoryMB(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{1001 * 8.0 / 1048576, "0.01"},
		{15258.7890625, "15258.79"},
		{1525.87890625, "1525.88"},
	}
	for _, tt := range tests {
		if got := FormatMemoryMB(tt.in); got != tt.want {
			t.Errorf("FormatMemoryMB(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBaselineLines(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	PrintStorageUsed(&buf, 4*8.0/1048576)
	PrintBaselineResult(&buf, "storage", 677, 250*time.Millisecond)

	want := "Storage used: 0.00 MB\nWith storage: 677 in 0.25s\n\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestRecomputeLines(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	PrintScalarStorageUsed(&buf)
	PrintBaselineResult(&buf, "recompute", math.Inf(1), 2*time.Second)

	want := "Storage used: ~0 MB (just scalars)\nWith recompute: +Inf in 2s\n\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestSweepLines(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	PrintSweepHeader(&buf)
	PrintSweepRow(&buf, models.MeasurementRecord{Interval: 10, MemoryMB: 1525.87890625, Elapsed: 3 * time.Second})
	PrintSweepRow(&buf, models.MeasurementRecord{Interval: 50000, MemoryMB: 40001 * 8.0 / 1048576, Elapsed: 1500 * time.Millisecond})

	want := "K,Memory_MB,Time_s\n10,1525.88,3\n50000,0.31,1.5\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

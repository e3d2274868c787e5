// Package sysinfo captures the hardware and process context of a
// measurement run: CPU features that affect floating-point throughput and
// the resident memory actually used by the process, to put the estimated
// retained-set footprints in perspective.
package sysinfo

import (
	"os"
	"runtime"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/process"
	"golang.org/x/sys/cpu"
)

// CPUFeatures lists the SIMD/FMA capabilities of the host.
type CPUFeatures struct {
	Arch   string
	NumCPU int
	AVX2   bool
	AVX512 bool
	FMA    bool
}

// DetectCPU reports the CPU features relevant to float64 arithmetic.
// On non-x86 hosts the x86 flags are simply false.
func DetectCPU() CPUFeatures {
	return CPUFeatures{
		Arch:   runtime.GOARCH,
		NumCPU: runtime.NumCPU(),
		AVX2:   cpu.X86.HasAVX2,
		AVX512: cpu.X86.HasAVX512F && cpu.X86.HasAVX512DQ,
		FMA:    cpu.X86.HasFMA,
	}
}

// MarshalZerologObject lets CPUFeatures be logged as a nested object.
func (f CPUFeatures) MarshalZerologObject(e *zerolog.Event) {
	e.Str("arch", f.Arch).
		Int("num_cpu", f.NumCPU).
		Bool("avx2", f.AVX2).
		Bool("avx512", f.AVX512).
		Bool("fma", f.FMA)
}

// MemorySnapshot is the resident and virtual memory of the current process.
type MemorySnapshot struct {
	RSS uint64
	VMS uint64
}

// RSSMB returns the resident set size in megabytes (1 MB = 1024×1024 bytes).
func (m MemorySnapshot) RSSMB() float64 {
	return float64(m.RSS) / (1024.0 * 1024.0)
}

// ProcessMemory reads the memory counters of the running process.
func ProcessMemory() (MemorySnapshot, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return MemorySnapshot{}, err
	}
	info, err := p.MemoryInfo()
	if err != nil {
		return MemorySnapshot{}, err
	}
	return MemorySnapshot{RSS: info.RSS, VMS: info.VMS}, nil
}

// LogProcessMemory logs the current resident memory under the given stage
// label. Failures to read the counters are logged, never returned.
func LogProcessMemory(logger zerolog.Logger, stage string) {
	snap, err := ProcessMemory()
	if err != nil {
		logger.Warn().Err(err).Str("stage", stage).Msg("process memory unavailable")
		return
	}
	logger.Info().
		Str("stage", stage).
		Str("rss_mb", strconv.FormatFloat(snap.RSSMB(), 'f', 2, 64)).
		Uint64("rss_bytes", snap.RSS).
		Msg("process memory")
}

package app

import (
	"runtime"

	"github.com/rs/zerolog"
)

// Build-time variables set via -ldflags.
//
// Example build command:
//
//	go build -ldflags="-X github.com/agbru/ckptcalc/internal/app.Version=v1.2.3 -X github.com/agbru/ckptcalc/internal/app.Commit=abc123 -X github.com/agbru/ckptcalc/internal/app.BuildDate=2025-01-01T00:00:00Z" ./cmd/ckptcalc
var (
	// Version is the semantic version of the application (e.g., "v1.0.0").
	Version = "dev"
	// Commit is the short Git commit hash (e.g., "abc123").
	Commit = "unknown"
	// BuildDate is the ISO 8601 timestamp of the build (e.g., "2025-01-01T00:00:00Z").
	BuildDate = "unknown"
)

// VersionData holds the build and runtime identification of the binary.
type VersionData struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// GetVersionInfo returns the current version information as a struct.
func GetVersionInfo() VersionData {
	return VersionData{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// MarshalZerologObject lets the version be logged as a nested object.
func (v VersionData) MarshalZerologObject(e *zerolog.Event) {
	e.Str("version", v.Version).
		Str("commit", v.Commit).
		Str("build_date", v.BuildDate).
		Str("go", v.GoVersion).
		Str("platform", v.OS+"/"+v.Arch)
}

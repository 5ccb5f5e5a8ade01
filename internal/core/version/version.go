// Package version reports build information stamped at link time
package version

import "runtime"

// BuildInfo holds version information about a binary
type BuildInfo struct {
	Service   string `json:"service" yaml:"service" example:"tirefit-api"`
	Version   string `json:"version" yaml:"version" example:"v0.3.0"`
	Commit    string `json:"commit" yaml:"commit" example:"4f2a9c1"`
	Date      string `json:"date" yaml:"date" example:"2026-10-01"`
	GoVersion string `json:"go_version" yaml:"go_version" example:"go1.25.0"`
}

// Set via -ldflags "-X 'tirefit/internal/core/version.version=v0.3.0'
// -X 'tirefit/internal/core/version.commit=4f2a9c1' -X 'tirefit/internal/core/version.date=2026-10-01'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build information for service
func Info(service string) BuildInfo {
	return BuildInfo{
		Service:   service,
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
	}
}

// String renders "service version (commit, date)"
func (b BuildInfo) String() string {
	return b.Service + " " + b.Version + " (" + b.Commit + ", " + b.Date + ")"
}

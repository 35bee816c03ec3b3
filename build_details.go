package oasflat

import (
	"fmt"
	"runtime"
)

// Set via ldflags at release time.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Version returns the compiled version or "dev" when run from source.
func Version() string {
	return version
}

// Commit returns the git short hash of the build or "unknown".
func Commit() string {
	return commit
}

// BuildTime returns the RFC3339 build timestamp or "unknown".
func BuildTime() string {
	return buildTime
}

// GoVersion returns the Go runtime version the binary was built with.
func GoVersion() string {
	return runtime.Version()
}

// UserAgent returns the User-Agent string to use, "oasflat/{version}".
func UserAgent() string {
	return fmt.Sprintf("oasflat/%s", version)
}

// BuildInfo returns the build metadata as printed by "oasflat version".
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s",
		Version(), Commit(), BuildTime(), GoVersion())
}

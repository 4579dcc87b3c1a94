// Package version holds build-time version information.
// Values are overridden via ldflags during release builds.
package version

var (
	// Version is the semantic version of the binary.
	Version = "dev"
	// GitCommit is the commit hash the binary was built from.
	GitCommit = "unknown"
	// BuildDate is the timestamp of the build.
	BuildDate = "unknown"
)

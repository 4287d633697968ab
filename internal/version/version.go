package version

import "fmt"

var (
	// Version is the semantic version of the localize build, overridable via ldflags.
	Version = "1.0.0"
	// Commit is the short git SHA embedded at build time, "none" for local builds.
	Commit = "none"
	// BuildTime is the UTC build timestamp embedded at build time.
	BuildTime = "unknown"
)

// Short returns only the semantic version string.
func Short() string {
	return Version
}

// Full renders the version with commit and build time for the version
// subcommand and startup logs.
func Full() string {
	return fmt.Sprintf("version: %s, commit: %s, built at: %s", Version, Commit, BuildTime)
}

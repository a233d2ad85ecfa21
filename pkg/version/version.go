// Package version exposes build metadata injected at link time.
package version

import "fmt"

// Build metadata, overridden via -ldflags "-X github.com/rshade/heroes/pkg/version.version=...".
//
//nolint:gochecknoglobals // Set by the linker at build time.
var (
	version   = "0.1.0-dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the semantic version of the binary.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// String returns a single-line human readable build description.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", version, gitCommit, buildDate)
}

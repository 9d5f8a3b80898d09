// Package version exposes build metadata for the brandtone binary.
package version

import (
	"fmt"
	"runtime"
)

// Set at build time with
// -ldflags "-X github.com/brandtone/brandtone/internal/version.<name>=<value>".
var (
	// Version is the semantic version, or "dev" for untagged builds.
	Version = "dev"

	// Commit is the git commit hash of the build.
	Commit = "unknown"

	// Date is the build date in RFC3339 format.
	Date = "unknown"
)

// Short returns just the version, for cobra's --version flag.
func Short() string {
	return Version
}

// String returns the full human-readable version line. Commit and date are
// included only when a release build injected them.
func String() string {
	platform := fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
	if Commit != "unknown" && Date != "unknown" {
		return fmt.Sprintf("brandtone version %s (commit: %s, built: %s, %s, %s)",
			Version, Commit[:8], Date, runtime.Version(), platform)
	}
	return fmt.Sprintf("brandtone version %s (%s, %s)", Version, runtime.Version(), platform)
}

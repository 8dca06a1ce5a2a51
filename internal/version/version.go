// Package version carries build metadata, set at link time with
// -ldflags "-X ...".
package version

import "fmt"

var (
	// Version is the current application version
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

// String formats the build metadata for -version output.
func String() string {
	return fmt.Sprintf("orbital.report %s (%s, built %s)", Version, GitSHA, BuildTime)
}

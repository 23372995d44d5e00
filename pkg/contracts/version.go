// Package contracts holds the stable surface shared across the application:
// the domain types under domain/ and the build version metadata.
package contracts

import (
	"fmt"
	"runtime"
)

// Version is the current version of the application.
const Version = "0.1.0"

var (
	// BuildTime is set during build using ldflags.
	BuildTime = "unknown"

	// GitCommit is set during build using ldflags.
	GitCommit = "unknown"
)

// VersionString returns a single-line version description for logs and the
// -version flag.
func VersionString() string {
	return fmt.Sprintf("tradeimport %s (%s, %s, %s/%s)",
		Version, GitCommit, BuildTime, runtime.GOOS, runtime.GOARCH)
}

// Package version contains build information for builtinsheet.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the current version of builtinsheet.
	Version = "dev"
	// BuildTime is the time when the binary was built.
	BuildTime = "unknown"
	// GitCommit is the git commit hash of the build.
	GitCommit = "unknown"
)

// String returns the version line printed by --version. The Go version
// matters here because it decides which builtins are listed.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s)", Version, GitCommit, BuildTime, runtime.Version())
}

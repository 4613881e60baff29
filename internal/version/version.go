// Package version holds build-time version information for mailtask.
package version

import "fmt"

var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
	GoVersion = "unknown"
)

// SetInfo overrides the build information with values injected at link time.
// Empty values are ignored so defaults survive a partial ldflags setup.
func SetInfo(v, bt, gc, gv string) {
	if v != "" {
		Version = v
	}
	if bt != "" {
		BuildTime = bt
	}
	if gc != "" {
		GitCommit = gc
	}
	if gv != "" {
		GoVersion = gv
	}
}

// Format returns the version block printed by the version subcommand.
func Format() string {
	return fmt.Sprintf("mailtask %s\nビルド: %s\nコミット: %s\nGo: %s", Version, BuildTime, GitCommit, GoVersion)
}

// Package version exposes build metadata injected via -ldflags.
package version

import "fmt"

var (
	// Version is the release tag, e.g. "v0.3.0". Set by the build.
	Version = "dev"
	// Commit is the short git hash of the build.
	Commit string
	// BuildDate is the build timestamp (UTC, RFC 3339).
	BuildDate string
)

// Info describes the build in structured form for the /version endpoint.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
}

// Get returns the structured build info.
func Get() Info {
	return Info{Version: Version, Commit: Commit, BuildDate: BuildDate}
}

// String returns a human-readable build line.
func String() string {
	if Commit == "" {
		return fmt.Sprintf("cosmos-dungeon %s", Version)
	}
	return fmt.Sprintf("cosmos-dungeon %s (%s, %s)", Version, Commit, BuildDate)
}

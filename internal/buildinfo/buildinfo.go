// Package buildinfo holds the build metadata of the gitsim binary. The
// linker injects the values into cmd/gitsim; main() forwards them with Set.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

const (
	unsetCommit  = "none"
	unsetBuiltBy = "unknown"
)

var current = Info{
	Version: "dev",
	Commit:  unsetCommit,
	Date:    "unknown",
	BuiltBy: unsetBuiltBy,
}

// Info is a snapshot of the build metadata.
type Info struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

// String renders the metadata the way `gitsim version` prints it.
func (i Info) String() string {
	return fmt.Sprintf("gitsim version %s\ncommit: %s\nbuilt at: %s\nbuilt by: %s\n", i.Version, i.Commit, i.Date, i.BuiltBy)
}

// Set stores the build metadata received from linker-injected variables.
func Set(version, commit, date, builtBy string) {
	current = Info{Version: version, Commit: commit, Date: date, BuiltBy: builtBy}
}

// Version returns the build version string.
func Version() string { return current.Version }

// Current returns the build metadata. A commit left at "none" is taken from
// the VCS revision embedded by the Go toolchain, and an unknown builder
// becomes the Go version.
func Current() Info {
	return enrich(current, debug.ReadBuildInfo)
}

func enrich(info Info, read func() (*debug.BuildInfo, bool)) Info {
	if info.Commit != unsetCommit && info.BuiltBy != unsetBuiltBy {
		return info
	}

	bi, ok := read()
	if !ok {
		return info
	}

	if info.Commit == unsetCommit {
		for _, setting := range bi.Settings {
			if setting.Key == "vcs.revision" {
				info.Commit = setting.Value
			}
		}
	}

	if info.BuiltBy == unsetBuiltBy {
		info.BuiltBy = bi.GoVersion
	}
	return info
}

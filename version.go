package seqio

import (
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of the seqio library.
const Version = "0.1.0"

// VersionInfo describes the build of the library.
type VersionInfo struct {
	Version   string
	GitCommit string // set via -ldflags
	BuildTime string // set via -ldflags
	GoVersion string
}

// GetVersionInfo returns detailed version information.
//
// GitCommit and BuildTime are injected at build time:
//
//	go build -ldflags="-X github.com/simonhull/seqio.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/seqio.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Without ldflags, GitCommit falls back to the VCS revision recorded by the
// Go toolchain, if any.
func GetVersionInfo() VersionInfo {
	commit := gitCommit
	if commit == "unknown" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" {
					commit = s.Value
				}
			}
		}
	}

	return VersionInfo{
		Version:   Version,
		GitCommit: commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// Variables populated at build time via -ldflags.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)

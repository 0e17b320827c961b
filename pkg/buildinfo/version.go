// Package buildinfo reports which toplangs build is running.
//
// Release builds stamp the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/toplangs/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/toplangs/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/toplangs/pkg/buildinfo.Date=$(date -u +%Y-%m-%d)"
//
// Binaries built with go install carry no ldflags; for those the module
// version and VCS revision recorded by the Go toolchain are used instead.
package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Stamped at link time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	fillFromModule(info)
}

// fillFromModule replaces unstamped values with what the toolchain recorded.
func fillFromModule(info *debug.BuildInfo) {
	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && Commit == "none":
			Commit = shortRev(s.Value)
		case s.Key == "vcs.time" && Date == "unknown":
			Date = s.Value
		}
	}
}

func shortRev(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}

// String is the one-line form used in logs, e.g.
// "toplangs v0.3.0 (abc123, 2026-01-02, go1.24.0)".
func String() string {
	return fmt.Sprintf("toplangs %s (%s, %s, %s)", Version, Commit, Date, runtime.Version())
}

// Template is the cobra version template printed by --version.
func Template() string {
	return String() + "\n"
}

// Package version holds the build version, set with
// -ldflags "-X github.com/toni500git/ulpm/pkg/version.Version=...".
package version

import "runtime/debug"

var (
	Version = ""
	Commit  = ""
)

// String returns the version, falling back to the module build info.
func String() string {
	v := Version
	if v == "" {
		v = "devel"
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}
	if Commit != "" {
		v += " (" + Commit + ")"
	}
	return v
}

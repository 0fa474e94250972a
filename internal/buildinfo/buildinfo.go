// Package buildinfo carries the version stamped in with -ldflags, falling
// back to the VCS revision the go tool records in the binary.
package buildinfo

import "runtime/debug"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// readBuildInfo is swapped out in tests.
var readBuildInfo = debug.ReadBuildInfo

// revision returns the embedded vcs.revision, shortened to 7 characters,
// and whether the tree was modified.
func revision() (rev string, dirty bool) {
	bi, ok := readBuildInfo()
	if !ok {
		return "", false
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	return rev, dirty
}

// Short is the identifier shown in the window title and HUD.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	if rev, dirty := revision(); rev != "" {
		if dirty {
			return rev + "+"
		}
		return rev
	}
	return "dev"
}

// Full is the -version line.
func Full() string {
	return "orrery " + Version + " (" + Commit + ", " + Date + ")"
}

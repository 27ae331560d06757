package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are populated at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns the string printed by questlog --version. Builds made with
// go install carry no ldflags, so the module version and VCS stamp are used
// instead when available.
func Info() string {
	version, commit, date := Version, Commit, Date
	if version == "dev" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			version, commit, date = fromBuildInfo(bi, version, commit, date)
		}
	}
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}

func fromBuildInfo(bi *debug.BuildInfo, version, commit, date string) (string, string, string) {
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if len(s.Value) > 12 {
				commit = s.Value[:12]
			} else if s.Value != "" {
				commit = s.Value
			}
		case "vcs.time":
			if s.Value != "" {
				date = s.Value
			}
		}
	}
	return version, commit, date
}

package app

import (
	"runtime/debug"
	"sync"
)

// Overridden at link time:
//
//	-ldflags "-X github.com/heartmarshall/quitsmoke-backend/internal/app.Version=1.4.0"
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

var vcsOnce = sync.OnceValues(func() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	var rev, at string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.time":
			at = s.Value
		}
	}
	return rev, at
})

// BuildVersion is the version reported by /health and --version. Commit
// and build time fall back to the VCS stamp embedded by the go tool.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if commit == "" || built == "" {
		rev, at := vcsOnce()
		if commit == "" {
			commit = rev
		}
		if built == "" {
			built = at
		}
	}
	if len(commit) > 12 {
		commit = commit[:12]
	}

	v := Version
	if commit != "" {
		v += " (" + commit
		if built != "" {
			v += ", " + built
		}
		v += ")"
	}
	return v
}

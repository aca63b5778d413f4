// Package version reports which build of webprobe is running. Release builds
// inject the values via -ldflags; anything else falls back to Go module build
// info, so `go install` and plain `go build` binaries still identify
// themselves.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"sync"
)

// Overridden at release time via -ldflags -X.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info is the build metadata of the running binary.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// String renders the metadata in the one-line form used by `webprobe version`.
func (i Info) String() string {
	return fmt.Sprintf("webprobe version %s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}

// Get returns the build metadata. ldflags values win; fields they left at
// their defaults are filled from debug.ReadBuildInfo once and cached.
var Get = sync.OnceValue(func() Info {
	info := Info{Version: version, Commit: commit, Date: date}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.fill(bi)
	}
	return info
})

// fill populates still-default fields from module build info. A tagged module
// version beats "(devel)"; vcs stamps supply the commit and build date.
func (i *Info) fill(bi *debug.BuildInfo) {
	if i.Version == "dev" {
		if v := bi.Main.Version; v != "" && v != "(devel)" {
			i.Version = strings.TrimPrefix(v, "v")
		}
	}
	for _, s := range bi.Settings {
		if s.Value == "" {
			continue
		}
		switch s.Key {
		case "vcs.revision":
			if i.Commit == "none" {
				rev := s.Value
				if len(rev) > 7 {
					rev = rev[:7]
				}
				i.Commit = rev
			}
		case "vcs.time":
			if i.Date == "unknown" {
				i.Date = s.Value
			}
		}
	}
}

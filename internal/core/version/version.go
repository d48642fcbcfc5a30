// Package version exposes build metadata baked in by the Go toolchain
package version

import "runtime/debug"

// Version is overridable at link time with -ldflags "-X ...version.Version=v1.2.3"
var Version = "dev"

// BuildInfo describes the running binary
type BuildInfo struct {
	Version   string `json:"version"    example:"v0.3.0"`
	Commit    string `json:"commit"     example:"4f9c2d1"`
	Modified  bool   `json:"modified"   example:"false"`
	GoVersion string `json:"go_version" example:"go1.25.0"`
}

// Info reads vcs metadata from the embedded build info
func Info() BuildInfo {
	out := BuildInfo{Version: Version}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}
	out.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if len(s.Value) >= 7 {
				out.Commit = s.Value[:7]
			} else {
				out.Commit = s.Value
			}
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}
	return out
}

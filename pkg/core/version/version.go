// Package version holds the versions reported by the library and the CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version constants
const (
	// Library is the version of the keyword library
	Library = "1.0.0"

	// Suite is the version of the suite file format
	Suite = "1.0.0"

	// CLI is the version of the strkw command
	CLI = "1.0.0"
)

// Commit is set at build time with -ldflags "-X .../version.Commit=<sha>"
var Commit = ""

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "library", "stringx", "keywords":
		return Library
	case "suite":
		return Suite
	default:
		return CLI
	}
}

// Info describes the running binary
type Info struct {
	Version   string `json:"version"`
	Library   string `json:"library"`
	Suite     string `json:"suite"`
	Commit    string `json:"commit,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build information of the running binary. Without an
// explicit Commit the VCS revision recorded by the Go toolchain is used.
func Get() Info {
	info := Info{
		Version:   CLI,
		Library:   Library,
		Suite:     Suite,
		Commit:    Commit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if info.Commit == "" {
		if build, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range build.Settings {
				if setting.Key == "vcs.revision" {
					info.Commit = setting.Value
				}
			}
		}
	}
	return info
}

// String returns a one-line description
func (i Info) String() string {
	s := fmt.Sprintf("strkw %s (library %s, suite format %s, %s, %s)", i.Version, i.Library, i.Suite, i.GoVersion, i.Platform)
	if i.Commit != "" {
		commit := i.Commit
		if len(commit) > 12 {
			commit = commit[:12]
		}
		s += " commit " + commit
	}
	return s
}

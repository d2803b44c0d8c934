// Package misc keeps build time information about the program.
package misc

import (
	"runtime/debug"
)

const appName = "objkit"

// Set with -ldflags "-X objkit/misc.version=... -X objkit/misc.gitHash=..."
var (
	version = "dev"
	gitHash = ""
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

// GetGitHash returns commit the program was built from, falling back to VCS
// information embedded by the go tool.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}

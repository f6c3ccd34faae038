// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package version provides build-time version information.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
)

// These variables are set at build time using ldflags.
var (
	// Version is the semantic version (e.g., "0.1.0", "0.1.0-alpha.1").
	Version = "dev"
	// Commit is the git commit SHA.
	Commit = "none"
	// Date is the build date in RFC3339 format.
	Date = "unknown"
)

// Build is the resolved version information of the running binary.
type Build struct {
	Version string
	Commit  string
	Date    string
	Go      string
}

var (
	once     sync.Once
	resolved Build
)

// Get returns the build information. Values missing from ldflags are taken
// from the module build info, which is set by "go install module@version".
func Get() Build {
	once.Do(func() {
		resolved = fromBuildInfo(Build{Version: Version, Commit: Commit, Date: Date, Go: runtime.Version()})
	})
	return resolved
}

func fromBuildInfo(b Build) Build {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}
	if b.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.Version = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if b.Commit == "none" && len(setting.Value) >= 7 {
				b.Commit = setting.Value[:7]
			}
		case "vcs.time":
			if b.Date == "unknown" {
				b.Date = setting.Value
			}
		}
	}
	return b
}

// String formats the build as printed by "schemagen version".
func (b Build) String() string {
	return fmt.Sprintf("schemagen version %s (commit: %s, built: %s, go: %s)",
		b.Version, b.Commit, b.Date, b.Go)
}

// Info returns formatted version information.
func Info() string {
	return Get().String()
}

// Short returns just the version string.
func Short() string {
	return Get().Version
}

// Generator identifies this tool in generated output.
func Generator() string {
	return "schemagen " + Short()
}

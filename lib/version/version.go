// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// These variables are set via -ldflags at build time:
//
//	go build -ldflags "-X github.com/bureau-foundation/procflow/lib/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	// GitCommit is the short git SHA of the build.
	GitCommit = "unknown"

	// GitDirty indicates whether there were uncommitted changes.
	GitDirty = "false"

	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"

	// Version is the semantic version. This is set manually for releases.
	Version = "0.1.0-dev"
)

// BuildInfo is the structured form of the build information, emitted
// by `procflow version --json`.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Dirty     bool   `json:"dirty"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Current returns the build information for the running binary.
func Current() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		Commit:    GitCommit,
		Dirty:     GitDirty == "true",
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if info.Commit == "unknown" {
		applyVCSStamp(&info, readBuildSettings())
	}
	return info
}

func readBuildSettings() []debug.BuildSetting {
	build, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	return build.Settings
}

// applyVCSStamp fills commit, dirty flag, and build time from the
// toolchain's vcs.* build settings. The revision is shortened to the
// same length `git rev-parse --short` uses.
func applyVCSStamp(info *BuildInfo, settings []debug.BuildSetting) {
	for _, setting := range settings {
		switch setting.Key {
		case "vcs.revision":
			revision := setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
			info.Commit = revision
		case "vcs.modified":
			info.Dirty = setting.Value == "true"
		case "vcs.time":
			if info.BuildTime == "unknown" {
				info.BuildTime = setting.Value
			}
		}
	}
}

// Info returns a formatted version string suitable for --version output.
func Info() string {
	return Current().String()
}

// String formats the build information as "version (commit[-dirty], time)".
func (info BuildInfo) String() string {
	dirty := ""
	if info.Dirty {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", info.Version, info.Commit, dirty, info.BuildTime)
}

// Full returns detailed version information including Go version.
func Full() string {
	info := Current()
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s", info, info.GoVersion, info.Platform)
}

// Short returns just the version number.
func Short() string {
	return Version
}

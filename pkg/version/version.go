// Package version exposes the build version of healthcalc.
package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Set at build time with
// -ldflags "-X github.com/rshade/healthcalc/pkg/version.version=v0.3.0".
//
//nolint:gochecknoglobals // Populated by the linker.
var (
	version   = "dev"
	gitCommit = ""
)

// GetVersion returns the version string the binary was built with.
func GetVersion() string {
	if version == "" {
		return "dev"
	}
	return version
}

// GetGitCommit returns the commit the binary was built from, if known.
func GetGitCommit() string {
	return gitCommit
}

// Semver parses the build version. ok is false for development builds.
func Semver() (*semver.Version, bool) {
	v, err := semver.NewVersion(strings.TrimPrefix(GetVersion(), "v"))
	if err != nil {
		return nil, false
	}
	return v, true
}

// String formats the version with the commit when available.
func String() string {
	if gitCommit == "" {
		return GetVersion()
	}
	return GetVersion() + " (" + gitCommit + ")"
}

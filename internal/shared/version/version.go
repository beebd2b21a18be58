// Package version reports the build version of the binary.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Version is overridden at build time:
//
//	go build -ldflags "-X civicpulse/internal/shared/version.Version=1.2.0"
var Version = "dev"

// Current returns the normalized build version, "dev" for local builds.
func Current() string {
	if v := Normalize(Version); semver.IsValid(v) {
		return v
	}
	return "dev"
}

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// IsRelease reports whether v is a semver release without a prerelease tag.
func IsRelease(v string) bool {
	v = Normalize(v)
	return semver.IsValid(v) && semver.Prerelease(v) == ""
}

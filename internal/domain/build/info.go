// Package build provides domain entities for build information.
package build

import "github.com/Masterminds/semver/v3"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// DevVersion is reported by builds without an injected version.
const DevVersion = "0.0.0-dev"

// SemVer parses Version, falling back to DevVersion.
func (i Info) SemVer() *semver.Version {
	v, err := semver.NewVersion(i.Version)
	if err != nil {
		return semver.MustParse(DevVersion)
	}
	return v
}

// RepoURL returns the repository URL.
func RepoURL() string {
	return "https://github.com/bnema/selsearch"
}

// Package version provides the build information reported by boardsctl and boardsd.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Defaults of the fields that were not injected at build time
const (
	DefaultVersion        = "dev"
	DefaultReleaseName    = "Uno"
	DefaultReleaseVersion = "0.0.0"
	DefaultBuildDate      = "unknown"
	DefaultGitCommit      = "unknown"

	shortCommitLen = 7
)

// Info describes one build of a boardlist binary.
type Info struct {
	// Version is the display string, e.g. "Uno (2026.10) - v1.0.0-4f9f297"
	Version        string `json:"version" yaml:"version"`
	ReleaseName    string `json:"release_name" yaml:"release_name"`
	ReleaseVersion string `json:"release_version" yaml:"release_version"`
	BuildDate      string `json:"build_date" yaml:"build_date"`
	GitCommit      string `json:"git_commit" yaml:"git_commit"`
}

// New returns an Info holding the defaults.
func New() *Info {
	return &Info{
		Version:        DefaultVersion,
		ReleaseName:    DefaultReleaseName,
		ReleaseVersion: DefaultReleaseVersion,
		BuildDate:      DefaultBuildDate,
		GitCommit:      DefaultGitCommit,
	}
}

// FromLinker builds an Info from the variables injected with -ldflags -X.
// Empty values keep their defaults. A commit or build date still unknown
// afterwards is taken from the VCS stamp of the binary, if any.
func FromLinker(full, releaseName, releaseVersion, buildDate, gitCommit string) *Info {
	info := New()
	info.set(&info.Version, full)
	info.set(&info.ReleaseName, releaseName)
	info.set(&info.ReleaseVersion, releaseVersion)
	info.set(&info.BuildDate, buildDate)
	info.set(&info.GitCommit, gitCommit)

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.applyBuildSettings(bi.Settings)
	}
	return info
}

func (i *Info) set(field *string, value string) {
	if value != "" {
		*field = value
	}
}

// applyBuildSettings fills unknown fields from the vcs.* build settings.
func (i *Info) applyBuildSettings(settings []debug.BuildSetting) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if i.GitCommit == DefaultGitCommit && s.Value != "" {
				i.GitCommit = s.Value[:min(len(s.Value), shortCommitLen)]
			}
		case "vcs.time":
			if i.BuildDate == DefaultBuildDate && s.Value != "" {
				i.BuildDate = s.Value
			}
		}
	}
}

// GoVersion returns the Go runtime version
func GoVersion() string {
	return runtime.Version()
}

// String returns the full version string
func (i *Info) String() string {
	return i.Version
}

// Short returns the release version and the commit, e.g. "v1.0.0-4f9f297".
func (i *Info) Short() string {
	return fmt.Sprintf("v%s-%s", i.ReleaseVersion, i.GitCommit)
}

// Full returns a multi-line description of the build.
func (i *Info) Full() string {
	var b strings.Builder
	b.WriteString(i.Version)
	for _, row := range [][2]string{
		{"Release", i.ReleaseName},
		{"Version", i.ReleaseVersion},
		{"Build Date", i.BuildDate},
		{"Git Commit", i.GitCommit},
		{"Go Version", GoVersion()},
	} {
		fmt.Fprintf(&b, "\n  %-11s %s", row[0]+":", row[1])
	}
	return b.String()
}

// Map returns the build information keyed like the boardsd version endpoint.
func (i *Info) Map() map[string]string {
	return map[string]string{
		"version":         i.Version,
		"release_name":    i.ReleaseName,
		"release_version": i.ReleaseVersion,
		"build_date":      i.BuildDate,
		"git_commit":      i.GitCommit,
		"go_version":      GoVersion(),
	}
}

// Package version provides build information for winarea.
package version

import (
	"fmt"
	"runtime"
)

// Injected at build time via -ldflags "-X .../version.version=v1.2.3"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info describes the running build
type Info struct {
	Version   string `yaml:"version"`
	Commit    string `yaml:"commit"`
	Date      string `yaml:"date"`
	GoVersion string `yaml:"go"`
	Platform  string `yaml:"platform"`
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// GetVersion returns the semantic version
func GetVersion() string {
	return version
}

func (i Info) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s, %s %s)", i.Version, i.Commit, i.Date, i.GoVersion, i.Platform)
}

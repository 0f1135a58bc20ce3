package version_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Norgate-AV/winarea/internal/version"
)

func TestGet(t *testing.T) {
	t.Parallel()

	info := version.Get()

	assert.Equal(t, version.GetVersion(), info.Version)
	assert.NotEmpty(t, info.Commit)
	assert.NotEmpty(t, info.Date)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestVersionFormat(t *testing.T) {
	t.Parallel()

	// Release builds carry a semantic version
	v := version.GetVersion()
	if v != "dev" {
		assert.Regexp(t, `^v?\d+\.\d+\.\d+`, v)
	}
}

func TestInfo_String(t *testing.T) {
	t.Parallel()

	info := version.Info{
		Version:   "v1.2.3",
		Commit:    "abc123",
		Date:      "2025-01-02",
		GoVersion: "go1.25.4",
		Platform:  "windows/amd64",
	}

	assert.Equal(t, "v1.2.3 (commit: abc123, built: 2025-01-02, go1.25.4 windows/amd64)", info.String())
}

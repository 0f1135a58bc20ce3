package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winarea/internal/config"
	"github.com/Norgate-AV/winarea/internal/interfaces"
	"github.com/Norgate-AV/winarea/internal/logger"
	"github.com/Norgate-AV/winarea/internal/testutil"
	"github.com/Norgate-AV/winarea/internal/version"
)

func init() {
	color.NoColor = true
}

var errNoDesktop = errors.New("no desktop in this test")

// harness runs commands against a mock desktop with a private config file
// and a logger whose console output is captured
type harness struct {
	t       *testing.T
	desktop *testutil.MockDesktop
	console bytes.Buffer
	logDir  string
}

func newHarness(t *testing.T, desktop *testutil.MockDesktop) *harness {
	t.Helper()

	h := &harness{t: t, desktop: desktop, logDir: t.TempDir()}
	h.withConfig("")

	oldBackend, oldLogger, oldSettle := newBackend, newLogger, settle
	t.Cleanup(func() {
		newBackend, newLogger, settle = oldBackend, oldLogger, oldSettle
	})

	newBackend = func(logger.LoggerInterface) (interfaces.Desktop, error) {
		if h.desktop == nil {
			return nil, errNoDesktop
		}

		return h.desktop, nil
	}

	newLogger = func(opts logger.LoggerOptions) (logger.LoggerInterface, error) {
		opts.LogDir = h.logDir
		opts.Console = &h.console
		return logger.NewLogger(opts)
	}

	settle = func() {}

	return h
}

// withConfig points WINAREA_CONFIG at a file holding content
func (h *harness) withConfig(content string) *harness {
	h.t.Setenv(config.EnvConfigPath, testutil.WriteConfig(h.t, h.t.TempDir(), content))
	return h
}

func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()

	var out bytes.Buffer

	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestRootCmd_Version(t *testing.T) {
	h := newHarness(t, nil)

	out, err := h.run("--version")
	require.NoError(t, err)
	assert.Equal(t, version.GetVersion()+"\n", out)
}

func TestRootCmd_NoArgsShowsHelp(t *testing.T) {
	h := newHarness(t, nil)

	out, err := h.run()
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "resolve")
	assert.Contains(t, out, "watch")
}

func TestRootCmd_InvalidFlag(t *testing.T) {
	h := newHarness(t, nil)

	_, err := h.run("--invalid-flag")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag")
}

func TestRootCmd_RejectsArguments(t *testing.T) {
	h := newHarness(t, nil)

	_, err := h.run("notepad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestRootCmd_InvalidOutputFormat(t *testing.T) {
	h := newHarness(t, nil)

	_, err := h.run("resolve", "--raw", "0,0,10,10", "--client", "0,0,10,10", "-o", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid output format "json"`)
}

func TestRootCmd_InvalidConfigFile(t *testing.T) {
	h := newHarness(t, nil).withConfig("borderless:\n  - match: \"title:[\"\n")

	_, err := h.run("resolve", "--raw", "0,0,10,10", "--client", "0,0,10,10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "borderless[0].match")
}

func TestRootCmd_ExplicitConfigMustExist(t *testing.T) {
	h := newHarness(t, nil)
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	_, err := h.run("resolve", "--raw", "0,0,10,10", "--client", "0,0,10,10", "--config", missing)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func setLogHome(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("LOCALAPPDATA", dir)
	t.Setenv("XDG_STATE_HOME", dir)

	return filepath.Join(dir, "winarea")
}

func TestRootCmd_LogsFlag(t *testing.T) {
	h := newHarness(t, nil)
	logDir := setLogHome(t)

	content := "Test log content\nLine 2\nLine 3"
	require.NoError(t, os.MkdirAll(logDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(logDir, "winarea.log"), []byte(content), 0o644))

	out, err := h.run("--logs")
	require.NoError(t, err)
	assert.Equal(t, content, out)
}

func TestRootCmd_LogsFlag_NoLogFile(t *testing.T) {
	h := newHarness(t, nil)
	logDir := setLogHome(t)

	_, err := h.run("--logs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log file does not exist")
	assert.Contains(t, err.Error(), filepath.Join(logDir, "winarea.log"))
}

func TestVersionCmd(t *testing.T) {
	h := newHarness(t, nil)

	out, err := h.run("version")
	require.NoError(t, err)
	assert.Equal(t, version.Get().String()+"\n", out)

	out, err = h.run("version", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "version: "+version.GetVersion())
	assert.Contains(t, out, "platform: "+runtime.GOOS+"/"+runtime.GOARCH)
}

func TestLiveCommands_WithoutDesktop(t *testing.T) {
	h := newHarness(t, nil)

	for _, args := range [][]string{
		{"list"},
		{"get", "notepad"},
		{"set", "notepad", "--x", "0"},
		{"edge", "notepad", "--edge", "left", "--pos", "0"},
		{"clamp", "notepad"},
		{"watch", "notepad"},
	} {
		_, err := h.run(args...)
		assert.ErrorIs(t, err, errNoDesktop, strings.Join(args, " "))
	}
}

func TestPlatformBackend_UnsupportedOffWindows(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("live backend is available on Windows")
	}

	_, err := platformBackend(logger.NewNoOpLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported platform")
}

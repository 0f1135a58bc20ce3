package logger_test

import (
	"bytes"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winarea/internal/logger"
)

func init() {
	color.NoColor = true
}

func TestDefaultLogDir(t *testing.T) {
	tmpDir := t.TempDir()

	if runtime.GOOS == "windows" {
		t.Setenv("LOCALAPPDATA", tmpDir)
	} else {
		t.Setenv("XDG_STATE_HOME", tmpDir)
	}

	assert.Equal(t, filepath.Join(tmpDir, "winarea"), logger.DefaultLogDir())
}

func TestDefaultLogDir_Fallback(t *testing.T) {
	tmpDir := t.TempDir()

	var expected string
	if runtime.GOOS == "windows" {
		t.Setenv("LOCALAPPDATA", "")
		t.Setenv("USERPROFILE", tmpDir)
		expected = filepath.Join(tmpDir, "AppData", "Local", "winarea")
	} else {
		t.Setenv("XDG_STATE_HOME", "")
		t.Setenv("HOME", tmpDir)
		expected = filepath.Join(tmpDir, ".local", "state", "winarea")
	}

	assert.Equal(t, expected, logger.DefaultLogDir())
}

func TestNewLogger_CreatesLogDirectory(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "nested", "logs")

	log, err := logger.NewLogger(logger.LoggerOptions{LogDir: tmpDir})
	require.NoError(t, err)
	defer log.Close()

	assert.DirExists(t, tmpDir)
	assert.Equal(t, filepath.Join(tmpDir, "winarea.log"), log.GetLogPath())
	assert.True(t, filepath.IsAbs(log.GetLogPath()), "Log path should be absolute")
}

func TestLogger_ConsoleLevels(t *testing.T) {
	tests := []struct {
		name     string
		verbose  bool
		contains []string
		excludes []string
	}{
		{
			name:     "quiet hides debug",
			verbose:  false,
			contains: []string{"hello\n", "WARNING: careful key=1", "ERROR: broken"},
			excludes: []string{"VERBOSE:", "trace only"},
		},
		{
			name:     "verbose shows debug",
			verbose:  true,
			contains: []string{"VERBOSE: details hwnd=42"},
			excludes: []string{"trace only"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var console bytes.Buffer

			log, err := logger.NewLogger(logger.LoggerOptions{
				LogDir:  t.TempDir(),
				Verbose: tt.verbose,
				Console: &console,
			})
			require.NoError(t, err)
			defer log.Close()

			log.Trace("trace only")
			log.Debug("details", slog.Int("hwnd", 42))
			log.Info("hello", slog.String("ignored", "attr"))
			log.Warn("careful", slog.Int("key", 1))
			log.Error("broken")

			out := console.String()
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
			assert.NotContains(t, out, "ignored=attr", "info lines are printed bare")
		})
	}
}

func TestLogger_FileCapturesTrace(t *testing.T) {
	tmpDir := t.TempDir()

	log, err := logger.NewLogger(logger.LoggerOptions{LogDir: tmpDir, Console: &bytes.Buffer{}})
	require.NoError(t, err)

	log.Trace("resolved", slog.String("branch", "bordered"))
	log.Close()

	data, err := os.ReadFile(filepath.Join(tmpDir, "winarea.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "level=TRACE")
	assert.Contains(t, string(data), "branch=bordered")
}

func TestPrintLogFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "winarea.log"), []byte("line one\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, logger.PrintLogFile(&out, logger.LoggerOptions{LogDir: tmpDir}))
	assert.Equal(t, "line one\n", out.String())
}

func TestPrintLogFile_Missing(t *testing.T) {
	err := logger.PrintLogFile(&bytes.Buffer{}, logger.LoggerOptions{LogDir: t.TempDir()})

	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestNoOpLogger(t *testing.T) {
	log := logger.NewNoOpLogger()
	assert.NotNil(t, log)

	assert.NotPanics(t, func() {
		log.Trace("test")
		log.Debug("test")
		log.Info("test")
		log.Warn("test")
		log.Error("test")
		log.Close()
	})
	assert.Empty(t, log.GetLogPath())
}
